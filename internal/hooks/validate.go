package hooks

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/identify"
)

// Validate checks the structural properties of the document and reports
// every finding, not only the first.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Repos) == 0 {
		errs = append(errs, errors.New("repos: at least one hook source is required"))
	}
	for i := range c.Repos {
		errs = append(errs, c.Repos[i].validate(fmt.Sprintf("repos[%d]", i))...)
	}
	return errors.Join(errs...)
}

func (r *Repo) validate(prefix string) []error {
	var errs []error
	switch {
	case r.Repo == "":
		errs = append(errs, fmt.Errorf("%s.repo: source is required", prefix))
	case r.IsLocal():
		if r.Rev != "" {
			errs = append(errs, fmt.Errorf("%s.rev: local sources must not pin a revision", prefix))
		}
	default:
		if r.Rev == "" {
			errs = append(errs, fmt.Errorf("%s.rev: remote source %s requires a pinned revision", prefix, r.Repo))
		}
	}
	if len(r.Hooks) == 0 {
		errs = append(errs, fmt.Errorf("%s.hooks: at least one hook is required", prefix))
	}

	seen := make(map[string]bool, len(r.Hooks))
	for j := range r.Hooks {
		h := &r.Hooks[j]
		hp := fmt.Sprintf("%s.hooks[%d]", prefix, j)
		if h.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id: hook id is required", hp))
		} else if seen[h.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate hook id %q in source %s", hp, h.ID, r.Repo))
		}
		seen[h.ID] = true
		errs = append(errs, h.validate(hp, r.IsLocal())...)
	}
	return errs
}

func (h *Hook) validate(prefix string, local bool) []error {
	var errs []error
	if local && h.Entry == "" {
		errs = append(errs, fmt.Errorf("%s.entry: local hooks must declare the command to run", prefix))
	}
	if h.Language != "" && !constants.IsValidLanguage(h.Language) {
		valid := append(append([]string{}, constants.RunnableLanguages...), constants.ManagedLanguages...)
		errs = append(errs, fmt.Errorf("%s.language: unknown language %q (valid: %s)", prefix, h.Language, strings.Join(valid, ", ")))
	}
	for _, s := range h.Stages {
		if !constants.IsValidStage(s) {
			errs = append(errs, fmt.Errorf("%s.stages: unknown stage %q (valid: %s)", prefix, s, strings.Join(constants.ValidStages, ", ")))
		}
	}
	for _, tag := range h.Types {
		if !identify.IsKnownTag(tag) {
			errs = append(errs, fmt.Errorf("%s.types: unknown file type tag %q", prefix, tag))
		}
	}
	if h.Files != "" {
		if _, err := regexp.Compile(h.Files); err != nil {
			errs = append(errs, fmt.Errorf("%s.files: invalid pattern: %w", prefix, err))
		}
	}
	return errs
}
