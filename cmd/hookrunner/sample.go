package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/hooks"
)

var sampleConfigCmd = &cobra.Command{
	Use:   "sample-config",
	Short: "Print a starter hook document",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(hooks.SampleConfig())
		return err
	},
}

func init() {
	rootCmd.AddCommand(sampleConfigCmd)
}
