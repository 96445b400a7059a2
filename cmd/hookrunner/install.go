package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/git"
	"github.com/pantryworks/recipe-converter/internal/hooks"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install git hook scripts for the stages the document uses",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		root, err := git.TopLevel(ctx, ".")
		if err != nil {
			return fmt.Errorf("hooks can only be installed inside a git repository: %w", err)
		}

		gitDir, err := git.Dir(ctx, root)
		if err != nil {
			return err
		}

		path := hooksFile(cmd)
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		doc, err := hooks.Load(path)
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			return err
		}

		return git.NewInstaller(gitDir, "").Install(documentStages(doc))
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove installed git hook scripts and restore any backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		root, err := git.TopLevel(ctx, ".")
		if err != nil {
			return fmt.Errorf("hooks can only be uninstalled inside a git repository: %w", err)
		}

		gitDir, err := git.Dir(ctx, root)
		if err != nil {
			return err
		}

		// Sweep every git-backed stage; hooks we did not install are left
		// untouched.
		return git.NewInstaller(gitDir, "").Uninstall(constants.GitHookStages)
	},
}

// documentStages collects the git-backed stages the document's hooks name,
// in GitHookStages order. Hooks that leave stages unset run at every stage,
// so a document that never names one gets the pre-commit script.
func documentStages(doc *hooks.Config) []string {
	named := map[string]bool{}
	for _, repo := range doc.Repos {
		for _, hook := range repo.Hooks {
			for _, stage := range hook.Stages {
				named[stage] = true
			}
		}
	}

	var stages []string
	for _, stage := range constants.GitHookStages {
		if named[stage] {
			stages = append(stages, stage)
		}
	}
	if len(stages) == 0 {
		stages = []string{constants.StagePreCommit}
	}
	return stages
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
