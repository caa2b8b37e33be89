package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ladlehq/ladle/internal/cli"
	"github.com/ladlehq/ladle/internal/model"
)

func ingredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredients",
		Short: "Manage the reusable ingredient database",
		Long: `The ingredient database stores package size, unit, and price per
ingredient so recipe files can leave those fields out.`,
	}

	cmd.AddCommand(addIngredientCmd())
	cmd.AddCommand(listIngredientsCmd())
	cmd.AddCommand(deleteIngredientCmd())

	return cmd
}

func addIngredientCmd() *cobra.Command {
	var (
		packageSize  float64
		packageUnit  string
		packagePrice float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or update an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			ingredient := &model.CatalogIngredient{
				Name:         args[0],
				PackageSize:  packageSize,
				PackageUnit:  packageUnit,
				PackagePrice: packagePrice,
			}
			if err := store.SaveIngredient(ctx, ingredient); err != nil {
				return fmt.Errorf("failed to save ingredient: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved ingredient %q (%s %s for %s)",
				ingredient.Name,
				strconv.FormatFloat(packageSize, 'f', -1, 64), packageUnit,
				cli.Money(packagePrice))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&packageSize, "size", 0, "Package size in package units")
	cmd.Flags().StringVar(&packageUnit, "unit", "", "Package unit (e.g. g, kg, ml)")
	cmd.Flags().Float64Var(&packagePrice, "price", 0, "Package price")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func listIngredientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all ingredients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			ingredients, err := store.ListIngredients(ctx)
			if err != nil {
				return fmt.Errorf("failed to list ingredients: %w", err)
			}

			if len(ingredients) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No ingredients saved yet. Use 'ladle ingredients add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Package"),
				cli.HeaderStyle.Render("Price"),
				cli.HeaderStyle.Render("Unit price"))

			for _, ingredient := range ingredients {
				unitPrice := 0.0
				if ingredient.PackageSize > 0 {
					unitPrice = ingredient.PackagePrice / ingredient.PackageSize
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s/%s\n",
					ingredient.Name,
					cli.Quantity(ingredient.PackageSize), ingredient.PackageUnit,
					cli.Money(ingredient.PackagePrice),
					fmt.Sprintf("$%.4f", unitPrice), ingredient.PackageUnit)
			}

			return nil
		},
	}
}

func deleteIngredientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteIngredient(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete ingredient: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted ingredient %q", args[0])))
			return nil
		},
	}
}
