package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ladlehq/ladle/internal/cli"
	"github.com/ladlehq/ladle/internal/common"
	"github.com/ladlehq/ladle/internal/engine"
	"github.com/ladlehq/ladle/internal/model"
	"github.com/ladlehq/ladle/internal/recipefile"
	"github.com/ladlehq/ladle/internal/service"
)

func costCmd() *cobra.Command {
	var (
		recipeName string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "cost [recipe-file.yaml]",
		Short: "Compute the full cost breakdown of a recipe",
		Long: `Compute ingredient, energy, labor, and packaging costs for a recipe
defined in a YAML file or already stored in the catalog. Ingredient lines with
missing package fields are pre-filled from the ingredient database by name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 && recipeName == "" {
				return fmt.Errorf("provide a recipe file or --recipe <name>")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var recipe *model.Recipe
			if len(args) > 0 {
				recipe, err = recipefile.Load(args[0])
				if err != nil {
					return err
				}
				if err := prefillFromCatalog(ctx, store, recipe); err != nil {
					return err
				}
			} else {
				recipe, err = store.GetRecipeByName(ctx, recipeName)
				if err != nil {
					return fmt.Errorf("failed to load recipe: %w", err)
				}
			}

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			breakdown := engine.New().Cost(recipe, *settings)
			cli.RenderBreakdown(os.Stdout, recipe, breakdown)

			if save {
				if recipe.Name == "" {
					return fmt.Errorf("cannot save a recipe without a name")
				}
				recipe.TotalCost = breakdown.GrandTotal
				recipe.CostPerUnit = breakdown.CostPerUnit
				recipe.CostPerUnitWithoutLabor = breakdown.CostPerUnitWithoutLabor
				if err := store.SaveRecipe(ctx, recipe); err != nil {
					return fmt.Errorf("failed to save recipe: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %q to the catalog", recipe.Name)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&recipeName, "recipe", "", "Cost a recipe already stored in the catalog")
	cmd.Flags().BoolVar(&save, "save", false, "Save the recipe and its cost snapshot to the catalog")

	return cmd
}

// prefillFromCatalog fills empty package fields of each ingredient line from
// the ingredient database, keyed by line name. Lines with explicit package
// data are left alone; lines unknown to the catalog stay as-is.
func prefillFromCatalog(ctx context.Context, store service.Storage, recipe *model.Recipe) error {
	for i := range recipe.Ingredients {
		line := &recipe.Ingredients[i]
		if line.PackageSize > 0 {
			continue
		}

		entry, err := store.GetIngredient(ctx, line.Name)
		if errors.Is(err, common.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up ingredient %q: %w", line.Name, err)
		}

		line.PackageSize = entry.PackageSize
		line.PackagePrice = entry.PackagePrice
		if line.PackageUnit == "" {
			line.PackageUnit = entry.PackageUnit
		}
	}
	return nil
}
