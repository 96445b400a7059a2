// Package runner materializes hook sources, selects the hooks eligible for a
// stage, and executes them serially in declaration order.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pantryworks/recipe-converter/internal/config"
	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/git"
	"github.com/pantryworks/recipe-converter/internal/hooks"
	"github.com/pantryworks/recipe-converter/internal/identify"
)

// Options select which hooks run and which files they see.
type Options struct {
	// Stage is the lifecycle stage being run. Empty means pre-commit.
	Stage string
	// AllFiles runs against every tracked file instead of the stage inputs.
	AllFiles bool
	// Files, when set, is the exact file input list.
	Files []string
	// HookID restricts the run to one hook.
	HookID string
	// GitArgs are the positional arguments git passed to the hook script.
	// The commit-msg stages read the message file path from here.
	GitArgs []string
}

// Runner executes the hooks of a document against a repository.
type Runner struct {
	cfg   *config.Config
	doc   *hooks.Config
	root  string
	cache *Cache
	out   io.Writer
}

func New(cfg *config.Config, doc *hooks.Config, root string) *Runner {
	return &Runner{
		cfg:   cfg,
		doc:   doc,
		root:  root,
		cache: NewCache(cfg.Hooks.CacheDir),
		out:   os.Stdout,
	}
}

// job pairs an eligible hook with the files it will see.
type job struct {
	src   Source
	hook  hooks.Hook
	files []string
}

// Run executes the eligible hooks and reports their results. It returns an
// error when any hook fails.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if opts.Stage == "" {
		opts.Stage = constants.StagePreCommit
	}
	if !constants.IsValidStage(opts.Stage) {
		return fmt.Errorf("unknown stage %q, must be one of: %v", opts.Stage, constants.ValidStages)
	}

	inputs, err := r.inputFiles(ctx, opts)
	if err != nil {
		return err
	}

	if r.hasRemote() {
		if err := r.cfg.Hooks.EnsureCacheDir(); err != nil {
			return err
		}
	}

	sources, err := Resolve(ctx, r.doc, r.root, r.cache)
	if err != nil {
		return err
	}

	jobs, err := selectJobs(sources, opts, inputs)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		logger().Info("no hooks for stage", "stage", opts.Stage)
		return nil
	}

	reporter := newReporter(r.out, r.cfg.Hooks.Color, len(jobs))

	start := time.Now()
	var failed int
	for _, j := range jobs {
		reporter.StartHook(j.hook.DisplayName())
		res := execHook(ctx, j.src.Dir, r.root, j.hook, j.files, r.cfg.Hooks.MaxBatchBytes)
		reporter.FinishHook(res)
		if res.Status == StatusFailed {
			failed++
		}
	}
	reporter.Summary(time.Since(start))

	if failed > 0 {
		return fmt.Errorf("%d of %d hooks failed", failed, len(jobs))
	}
	return nil
}

// inputFiles determines the file inputs for the run. Explicit --files wins,
// then --all-files, then the stage's own inputs.
func (r *Runner) inputFiles(ctx context.Context, opts Options) ([]string, error) {
	if len(opts.Files) > 0 {
		return opts.Files, nil
	}
	if opts.AllFiles {
		return git.TrackedFiles(ctx, r.root)
	}

	if isCommitMsgStage(opts.Stage) {
		if len(opts.GitArgs) == 0 {
			return nil, fmt.Errorf("stage %s expects the commit message file as an argument", opts.Stage)
		}
		return opts.GitArgs[:1], nil
	}

	switch opts.Stage {
	case constants.StagePreCommit, constants.StagePreMergeCommit:
		return git.StagedFiles(ctx, r.root)
	default:
		// No file inputs; always_run hooks still run.
		return nil, nil
	}
}

func isCommitMsgStage(stage string) bool {
	for _, s := range constants.CommitMsgStages {
		if s == stage {
			return true
		}
	}
	return false
}

func (r *Runner) hasRemote() bool {
	for i := range r.doc.Repos {
		if !r.doc.Repos[i].IsLocal() {
			return true
		}
	}
	return false
}

// selectJobs walks the sources in declaration order and keeps the hooks
// eligible for this run, each paired with its matched files.
func selectJobs(sources []Source, opts Options, inputs []string) ([]job, error) {
	var jobs []job
	found := false

	for _, src := range sources {
		for _, h := range src.Hooks {
			if opts.HookID != "" {
				if h.ID != opts.HookID {
					continue
				}
				found = true
			}
			if !h.RunsAtStage(opts.Stage) {
				continue
			}

			matched, err := matchFiles(h, inputs)
			if err != nil {
				return nil, fmt.Errorf("hook %s: %w", h.ID, err)
			}
			jobs = append(jobs, job{src: src, hook: h, files: matched})
		}
	}

	if opts.HookID != "" && !found {
		return nil, fmt.Errorf("no hook with id %q", opts.HookID)
	}
	return jobs, nil
}

// matchFiles filters the input files through the hook's files regex and
// types tags.
func matchFiles(h hooks.Hook, inputs []string) ([]string, error) {
	re, err := h.FilesRegexp()
	if err != nil {
		return nil, fmt.Errorf("files: %w", err)
	}

	var matched []string
	for _, f := range inputs {
		if re != nil && !re.MatchString(f) {
			continue
		}
		if !identify.Matches(f, h.Types) {
			continue
		}
		matched = append(matched, f)
	}
	return matched, nil
}
