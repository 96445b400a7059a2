// Package git shells out to the git binary for the repository queries,
// clones, and hook-script management hookrunner needs.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

func logger() *log.Logger { return log.Default().WithPrefix("git") }

// run executes git with args in dir (cwd when empty) and returns raw
// combined output. Errors carry the subcommand and trimmed output.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %v: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

func output(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// splitNul splits NUL-separated git output into paths.
func splitNul(out string) []string {
	var paths []string
	for _, p := range strings.Split(out, "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// TopLevel returns the root of the working tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	return output(ctx, dir, "rev-parse", "--show-toplevel")
}

// Dir returns the absolute path of the .git directory for dir.
func Dir(ctx context.Context, dir string) (string, error) {
	return output(ctx, dir, "rev-parse", "--absolute-git-dir")
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	return output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}

// StagedFiles returns the paths staged for commit, excluding deletions, as
// paths relative to the working tree root.
func StagedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := run(ctx, dir, "diff", "--cached", "--name-only", "--diff-filter=ACMRTUXB", "-z")
	if err != nil {
		return nil, err
	}
	return splitNul(out), nil
}

// TrackedFiles returns every path git tracks in the working tree.
func TrackedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := run(ctx, dir, "ls-files", "-z")
	if err != nil {
		return nil, err
	}
	return splitNul(out), nil
}

// Clone clones url into dir and checks out rev. The clone is full rather
// than shallow: a pinned rev can be any commit, not just a branch tip.
func Clone(ctx context.Context, url, rev, dir string) error {
	logger().Debug("cloning hook source", "url", url, "rev", rev, "dir", dir)
	if _, err := run(ctx, "", "clone", "--quiet", url, dir); err != nil {
		return err
	}
	if _, err := run(ctx, dir, "checkout", "--quiet", rev); err != nil {
		return err
	}
	return nil
}
