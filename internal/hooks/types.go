// Package hooks models the hook configuration document consumed by
// hookrunner: which sources provide hooks and how each hook runs.
package hooks

import (
	"regexp"

	"github.com/pantryworks/recipe-converter/internal/constants"
)

// Config is the top-level hook document: an ordered sequence of hook
// sources. Hooks run in the order their sources declare them.
type Config struct {
	Repos []Repo `yaml:"repos" json:"repos" jsonschema:"description=Hook sources in declaration order"`
}

// Repo is one hook source: a remote repository pinned to a revision, or the
// literal 'local' for hooks defined entirely in this document.
type Repo struct {
	Repo  string `yaml:"repo" json:"repo" jsonschema:"description=Repository URL or the literal 'local'"`
	Rev   string `yaml:"rev,omitempty" json:"rev,omitempty" jsonschema:"description=Pinned revision; required for remote sources"`
	Hooks []Hook `yaml:"hooks" json:"hooks" jsonschema:"description=Hooks taken from this source"`
}

// Hook is one hook entry. For remote sources the id selects an entry from
// the source's manifest and any other field set here overrides the manifest
// default; local hooks are self-contained.
type Hook struct {
	ID            string   `yaml:"id" json:"id" jsonschema:"description=Hook identifier; unique within its source"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Display name shown while running"`
	Entry         string   `yaml:"entry,omitempty" json:"entry,omitempty" jsonschema:"description=Command to run; required for local hooks"`
	Language      string   `yaml:"language,omitempty" json:"language,omitempty" jsonschema:"description=Execution environment tag"`
	Args          []string `yaml:"args,omitempty" json:"args,omitempty" jsonschema:"description=Extra arguments appended to the entry"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty" json:"pass_filenames,omitempty" jsonschema:"description=Append matched filenames to the command; defaults to true"`
	Types         []string `yaml:"types,omitempty" json:"types,omitempty" jsonschema:"description=File type tags a file must carry to match"`
	Files         string   `yaml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Regular expression a file path must match"`
	AlwaysRun     bool     `yaml:"always_run,omitempty" json:"always_run,omitempty" jsonschema:"description=Run even when no files match"`
	Stages        []string `yaml:"stages,omitempty" json:"stages,omitempty" jsonschema:"description=Lifecycle stages the hook is eligible for; empty means all"`
}

// IsLocal reports whether this source defines its hooks locally.
func (r *Repo) IsLocal() bool {
	return r.Repo == constants.LocalRepo
}

// DisplayName returns the hook's name, falling back to its id.
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// PassesFilenames reports whether matched filenames are appended to the
// hook command. Unset means true.
func (h *Hook) PassesFilenames() bool {
	return h.PassFilenames == nil || *h.PassFilenames
}

// EffectiveLanguage returns the hook's language tag, defaulting to system.
func (h *Hook) EffectiveLanguage() string {
	if h.Language == "" {
		return constants.LanguageSystem
	}
	return h.Language
}

// RunsAtStage reports whether the hook is eligible at a stage. An empty
// stages list means every stage.
func (h *Hook) RunsAtStage(stage string) bool {
	if len(h.Stages) == 0 {
		return true
	}
	for _, s := range h.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// FilesRegexp compiles the files filter. A nil regexp means no filter.
func (h *Hook) FilesRegexp() (*regexp.Regexp, error) {
	if h.Files == "" {
		return nil, nil
	}
	return regexp.Compile(h.Files)
}
