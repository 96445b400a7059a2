package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/config"
	"github.com/pantryworks/recipe-converter/internal/runner"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached hook source clones",
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThanStr, err := cmd.Flags().GetString("older-than")
		if err != nil {
			return err
		}

		var olderThan time.Duration
		if olderThanStr != "" {
			olderThan, err = time.ParseDuration(olderThanStr)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			if olderThan < 0 {
				return fmt.Errorf("--older-than must not be negative - got: %s", olderThan)
			}
		}

		stats, err := runner.NewCache(cfg.Hooks.CacheDir).Clean(olderThan)
		if err != nil {
			return err
		}

		log.Info("cache cleaned", "removed", stats.Removed, "freed", config.FormatSize(stats.Freed))
		return nil
	},
}

func init() {
	cleanCmd.Flags().String("older-than", "", "only remove clones unused for at least this long (e.g. 720h)")
	rootCmd.AddCommand(cleanCmd)
}
