package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ladlehq/ladle/internal/cli"
	"github.com/ladlehq/ladle/internal/convert"
)

func convertCmd() *cobra.Command {
	var ingredient string

	cmd := &cobra.Command{
		Use:   "convert <quantity> <from-unit> <to-unit>",
		Short: "Convert a quantity between units",
		Long: `Convert between weight units, volume units, or across the two when a
density is known for the ingredient (--ingredient). Unresolvable conversions
return the quantity unchanged with a warning.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			quantity, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity: %w", err)
			}

			result := convert.Convert(quantity, args[1], args[2], ingredient)
			if !result.Converted() {
				fmt.Println(cli.FormatWarning(result.Reason))
			}
			fmt.Printf("%s %s = %s %s\n",
				cli.Quantity(quantity), args[1],
				cli.Quantity(result.Value), args[2])
			return nil
		},
	}

	cmd.Flags().StringVar(&ingredient, "ingredient", "", "Ingredient name for density lookup on weight↔volume conversion")

	return cmd
}
