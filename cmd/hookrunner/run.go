package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/constants"
	"github.com/pantryworks/recipe-converter/internal/git"
	"github.com/pantryworks/recipe-converter/internal/hooks"
	"github.com/pantryworks/recipe-converter/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run [git-args...]",
	Short: "Run the hooks eligible for a lifecycle stage",
	Long: `Run the hooks eligible for a lifecycle stage.

Without flags the stage is pre-commit and the staged files are the inputs.
The installed git hook scripts call this command, passing along whatever
arguments git hands them.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, err := cmd.Flags().GetString("stage")
		if err != nil {
			return err
		}

		allFiles, err := cmd.Flags().GetBool("all-files")
		if err != nil {
			return err
		}

		files, err := cmd.Flags().GetStringSlice("files")
		if err != nil {
			return err
		}

		hookID, err := cmd.Flags().GetString("hook")
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		root, err := git.TopLevel(ctx, ".")
		if err != nil {
			return fmt.Errorf("hooks can only run inside a git repository: %w", err)
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

		return runner.New(cfg, doc, root).Run(ctx, runner.Options{
			Stage:    stage,
			AllFiles: allFiles,
			Files:    files,
			HookID:   hookID,
			GitArgs:  args,
		})
	},
}

func init() {
	runCmd.Flags().String("stage", constants.StagePreCommit, "lifecycle stage to run hooks for")
	runCmd.Flags().Bool("all-files", false, "run against every tracked file instead of the staged ones")
	runCmd.Flags().StringSlice("files", nil, "run against exactly these files")
	runCmd.Flags().String("hook", "", "run only the hook with this id")
	rootCmd.AddCommand(runCmd)
}
