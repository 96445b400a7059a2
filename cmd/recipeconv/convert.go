package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/recipe"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert the measurements in a recipe",
	Long: `Convert rewrites every measurement line of a recipe to metric units
(or to US customary units with --to-us), leaving all other lines untouched.

Input and output default to stdin and stdout; pass file paths or "-".`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		toUS, _ := cmd.Flags().GetBool("to-us")

		input, output := "-", "-"
		if len(args) > 0 {
			input = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}

		text, err := readInput(input)
		if err != nil {
			return err
		}

		dir := recipe.ToMetric
		if toUS {
			dir = recipe.ToUS
		}

		converted, count := recipe.ConvertText(text, catalog(), dir)
		log.Debug("converted recipe", "measurements", count, "direction", dir)

		return writeOutput(output, converted, count)
	},
}

func init() {
	convertCmd.Flags().Bool("to-us", false, "convert to US customary units instead of metric")
	rootCmd.AddCommand(convertCmd)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading recipe: %w", err)
	}
	return string(data), nil
}

func writeOutput(path, text string, count int) error {
	if path == "-" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing recipe: %w", err)
	}
	log.Info("wrote converted recipe", "path", path, "measurements", count)
	return nil
}
