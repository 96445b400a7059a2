package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/git"
	"github.com/pantryworks/recipe-converter/internal/hooks"
)

func logger() *log.Logger { return log.Default().WithPrefix("runner") }

// Source is a materialized hook source: the directory hook entries resolve
// against, plus the hooks selected from it with overrides applied.
type Source struct {
	Repo  hooks.Repo
	Dir   string
	Hooks []hooks.Hook
}

// Resolve materializes every source in the document, in declaration order.
// Local hooks resolve against root; remote hooks come from the manifest of a
// pinned clone with the document entry's overrides laid on top.
func Resolve(ctx context.Context, doc *hooks.Config, root string, cache *Cache) ([]Source, error) {
	sources := make([]Source, 0, len(doc.Repos))
	for i, repo := range doc.Repos {
		if repo.IsLocal() {
			sources = append(sources, Source{Repo: repo, Dir: root, Hooks: repo.Hooks})
			continue
		}

		dir, err := cache.Materialize(ctx, repo.Repo, repo.Rev)
		if err != nil {
			return nil, fmt.Errorf("repos[%d] %s: %w", i, repo.Repo, err)
		}

		manifest, err := hooks.LoadManifest(filepath.Join(dir, constants.ManifestFilename))
		if err != nil {
			return nil, fmt.Errorf("repos[%d] %s: %w", i, repo.Repo, err)
		}

		merged, err := mergeHooks(manifest, repo.Hooks)
		if err != nil {
			return nil, fmt.Errorf("repos[%d] %s: %w", i, repo.Repo, err)
		}

		sources = append(sources, Source{Repo: repo, Dir: dir, Hooks: merged})
	}
	return sources, nil
}

// mergeHooks looks up each selected hook in the source manifest and applies
// the document entry's set fields over the manifest defaults.
func mergeHooks(manifest, selected []hooks.Hook) ([]hooks.Hook, error) {
	byID := make(map[string]hooks.Hook, len(manifest))
	for _, m := range manifest {
		byID[m.ID] = m
	}

	merged := make([]hooks.Hook, 0, len(selected))
	for _, sel := range selected {
		base, ok := byID[sel.ID]
		if !ok {
			return nil, fmt.Errorf("hook %q is not in the source manifest", sel.ID)
		}
		merged = append(merged, overlay(base, sel))
	}
	return merged, nil
}

// overlay replaces every manifest field the document entry sets. always_run
// can only be switched on; an explicit false is indistinguishable from unset.
func overlay(base, over hooks.Hook) hooks.Hook {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Entry != "" {
		base.Entry = over.Entry
	}
	if over.Language != "" {
		base.Language = over.Language
	}
	if len(over.Args) > 0 {
		base.Args = over.Args
	}
	if over.PassFilenames != nil {
		base.PassFilenames = over.PassFilenames
	}
	if len(over.Types) > 0 {
		base.Types = over.Types
	}
	if over.Files != "" {
		base.Files = over.Files
	}
	if over.AlwaysRun {
		base.AlwaysRun = true
	}
	if len(over.Stages) > 0 {
		base.Stages = over.Stages
	}
	return base
}

// Cache materializes remote sources as pinned clones, one directory per
// (url, rev) pair. A completed clone is never modified, only removed by
// Clean.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

type cloneInfo struct {
	URL      string `json:"url"`
	Rev      string `json:"rev"`
	LastUsed string `json:"last_used"`
}

type lockInfo struct {
	PID       int    `json:"pid"`
	StartedAt string `json:"started_at"`
}

// cacheName derives a stable directory name for a pinned source.
func cacheName(url, rev string) string {
	base := path.Base(strings.TrimSuffix(url, ".git"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, base)

	sum := sha256.Sum256([]byte(url + "@" + rev))
	return base + "-" + hex.EncodeToString(sum[:])[:12]
}

// Materialize returns the directory holding url pinned at rev, cloning it on
// first use. Concurrent runs are serialized through a per-clone lock file.
func (c *Cache) Materialize(ctx context.Context, url, rev string) (string, error) {
	name := cacheName(url, rev)
	dir := filepath.Join(c.dir, name)

	if _, err := os.Stat(dir); err == nil {
		c.touch(name, url, rev)
		return dir, nil
	}

	if err := c.acquireLock(name); err != nil {
		return "", err
	}
	defer c.releaseLock(name)

	// Another run may have finished the clone while we took the lock.
	if _, err := os.Stat(dir); err == nil {
		c.touch(name, url, rev)
		return dir, nil
	}

	logger().Info("materializing hook source", "url", url, "rev", rev)

	tmp := dir + ".tmp"
	os.RemoveAll(tmp)
	if err := git.Clone(ctx, url, rev, tmp); err != nil {
		os.RemoveAll(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dir); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("publishing clone: %w", err)
	}

	c.touch(name, url, rev)
	return dir, nil
}

// touch records when a clone was last used, for Clean's age filter.
func (c *Cache) touch(name, url, rev string) {
	info := cloneInfo{
		URL:      url,
		Rev:      rev,
		LastUsed: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(filepath.Join(c.dir, name+".json"), data, 0644); err != nil {
		logger().Debug("could not record cache use", "name", name, "error", err)
	}
}

func (c *Cache) lockPath(name string) string {
	return filepath.Join(c.dir, name+".lock")
}

func (c *Cache) acquireLock(name string) error {
	lockPath := c.lockPath(name)

	info := lockInfo{
		PID:       os.Getpid(),
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
	lockData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling lock info: %w", err)
	}

	for {
		// O_EXCL makes creation atomic, so two runs racing for the same
		// source cannot both hold the lock.
		f, err := os.OpenFile(lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			_, werr := f.Write(lockData)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				os.Remove(lockPath)
				return fmt.Errorf("writing lock file: %w", werr)
			}
			logger().Debug("cache lock acquired", "path", lockPath, "pid", info.PID)
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("writing lock file: %w", err)
		}

		held, err := os.ReadFile(lockPath)
		if err != nil {
			if os.IsNotExist(err) {
				// The holder released between our attempts; try again.
				continue
			}
			return fmt.Errorf("reading lock file: %w", err)
		}
		var holder lockInfo
		if json.Unmarshal(held, &holder) == nil && isProcessAlive(holder.PID) {
			return fmt.Errorf("another hookrunner is materializing this source (PID: %d, started: %s)", holder.PID, holder.StartedAt)
		}

		logger().Warn("stale cache lock found, removing", "stale_pid", holder.PID)
		os.Remove(lockPath)
	}
}

func (c *Cache) releaseLock(name string) {
	lockPath := c.lockPath(name)
	if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
		logger().Error("failed to remove lock file", "path", lockPath, "error", err)
	} else {
		logger().Debug("cache lock released", "path", lockPath)
	}
}

func isProcessAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 checks if the process exists without actually sending a signal
	return process.Signal(syscall.Signal(0)) == nil
}

// CleanStats summarizes a cache prune.
type CleanStats struct {
	Removed int
	Freed   int64
}

// Clean removes cached clones. A zero olderThan removes every clone;
// otherwise only clones unused for at least that long go. Interrupted clones
// and stale locks are removed unconditionally.
func (c *Cache) Clean(olderThan time.Duration) (CleanStats, error) {
	var stats CleanStats

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, err
	}

	cutoff := time.Now().Add(-olderThan)

	for _, e := range entries {
		name := e.Name()

		if strings.HasSuffix(name, ".tmp") && e.IsDir() {
			logger().Warn("removing interrupted clone", "dir", name)
			stats.Freed += dirSize(filepath.Join(c.dir, name))
			os.RemoveAll(filepath.Join(c.dir, name))
			continue
		}

		if strings.HasSuffix(name, ".lock") {
			data, err := os.ReadFile(filepath.Join(c.dir, name))
			if err != nil {
				continue
			}
			var info lockInfo
			if json.Unmarshal(data, &info) == nil && !isProcessAlive(info.PID) {
				logger().Warn("removing stale cache lock", "file", name, "stale_pid", info.PID)
				os.Remove(filepath.Join(c.dir, name))
			}
			continue
		}

		if !strings.HasSuffix(name, ".json") {
			continue
		}

		metaPath := filepath.Join(c.dir, name)
		cloneDir := filepath.Join(c.dir, strings.TrimSuffix(name, ".json"))

		if olderThan > 0 {
			data, err := os.ReadFile(metaPath)
			if err != nil {
				continue
			}
			var info cloneInfo
			if err := json.Unmarshal(data, &info); err != nil {
				continue
			}
			lastUsed, err := time.Parse(time.RFC3339, info.LastUsed)
			if err == nil && lastUsed.After(cutoff) {
				continue
			}
		}

		stats.Freed += dirSize(cloneDir)
		if err := os.RemoveAll(cloneDir); err != nil {
			logger().Error("failed to remove cached clone", "dir", cloneDir, "error", err)
			continue
		}
		os.Remove(metaPath)
		stats.Removed++
		logger().Debug("removed cached clone", "dir", cloneDir)
	}

	return stats, nil
}

func dirSize(dir string) int64 {
	var total int64
	filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
