package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients [name]",
	Short: "List the ingredient density table or look one up",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog()

		if len(args) == 1 {
			grams, ok := cat.GramsPerCup(args[0])
			if !ok {
				return fmt.Errorf("unknown ingredient %q", args[0])
			}
			fmt.Printf("%s: %.0f g/cup\n", args[0], grams)
			return nil
		}

		for _, name := range cat.Names() {
			grams, _ := cat.GramsPerCup(name)
			fmt.Printf("%-24s %4.0f g/cup\n", name, grams)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingredientsCmd)
}
