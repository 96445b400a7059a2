package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/git"
	"github.com/pantryworks/recipe-converter/internal/hooks"
)

// resolveHooksFile makes a relative document path absolute against the
// repository root, so the document a subdirectory invocation validates is
// the one run and install would use. Outside a repository the path stays
// relative to the working directory.
func resolveHooksFile(ctx context.Context, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	root, err := git.TopLevel(ctx, ".")
	if err != nil {
		return path
	}
	return filepath.Join(root, path)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the hook document against its schema and structural rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveHooksFile(cmd.Context(), hooksFile(cmd))

		doc, err := hooks.Load(path)
		if err != nil {
			return err
		}

		var findings []error
		if err := doc.Validate(); err != nil {
			findings = append(findings, err)
		}

		validator, err := hooks.NewSchemaValidator()
		if err != nil {
			return err
		}
		if err := validator.ValidateDocument(doc); err != nil {
			findings = append(findings, err)
		}

		if len(findings) > 0 {
			return fmt.Errorf("%s is not a valid hook document:\n%w", path, errors.Join(findings...))
		}

		count := 0
		for _, repo := range doc.Repos {
			count += len(repo.Hooks)
		}
		log.Info("hook document is valid", "path", path, "sources", len(doc.Repos), "hooks", count)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
