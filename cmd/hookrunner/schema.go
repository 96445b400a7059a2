package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/hooks"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the hook document",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hooks.GenerateSchema()
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
