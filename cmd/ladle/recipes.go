package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ladlehq/ladle/internal/cli"
	"github.com/ladlehq/ladle/internal/engine"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Manage the recipe catalog",
		Long:  `List, show, delete, and recost recipes stored in the catalog.`,
	}

	cmd.AddCommand(listRecipesCmd())
	cmd.AddCommand(showRecipeCmd())
	cmd.AddCommand(deleteRecipeCmd())
	cmd.AddCommand(recostRecipesCmd())

	return cmd
}

func listRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recipes with their saved cost snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			recipes, err := store.ListRecipes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}

			if len(recipes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No recipes saved yet. Use 'ladle cost <file> --save' to add one."))
				return nil
			}

			cli.RenderRecipeList(os.Stdout, recipes)
			return nil
		},
	}
}

func showRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a recipe's saved cost breakdown",
		Long: `Recompute and display the full breakdown for a stored recipe using the
current settings. The saved snapshot is not modified; use 'recipes recost' to
refresh snapshots after a rate change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			recipe, err := store.GetRecipeByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load recipe: %w", err)
			}

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			breakdown := engine.New().Cost(recipe, *settings)
			cli.RenderBreakdown(os.Stdout, recipe, breakdown)
			return nil
		},
	}
}

func deleteRecipeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a recipe from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			if !force {
				fmt.Printf("Are you sure you want to delete recipe %q? (y/N): ", name)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteRecipe(ctx, name); err != nil {
				return fmt.Errorf("failed to delete recipe: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted recipe %q", name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func recostRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recost",
		Short: "Recompute saved cost snapshots for every recipe",
		Long: `Recompute the persisted totals of every catalog recipe against the
current settings. Run this after changing energy or labor rates.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			recipes, err := store.ListRecipes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}
			if len(recipes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to recost."))
				return nil
			}

			calc := engine.New()
			bar := progressbar.Default(int64(len(recipes)), "recosting")
			for _, summary := range recipes {
				recipe, err := store.GetRecipeByName(ctx, summary.Name)
				if err != nil {
					return fmt.Errorf("failed to load recipe %q: %w", summary.Name, err)
				}

				breakdown := calc.Cost(recipe, *settings)
				recipe.TotalCost = breakdown.GrandTotal
				recipe.CostPerUnit = breakdown.CostPerUnit
				recipe.CostPerUnitWithoutLabor = breakdown.CostPerUnitWithoutLabor

				if err := store.SaveRecipe(ctx, recipe); err != nil {
					return fmt.Errorf("failed to save recipe %q: %w", summary.Name, err)
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recosted %d recipes", len(recipes))))
			return nil
		},
	}
}
