package storage

import (
	"context"
	"fmt"

	"github.com/ladlehq/ladle/internal/model"
)

// validateContext ensures the context is usable before touching the database.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return nil
}

// validateString ensures a required string argument is non-empty.
func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

// validateRecipe enforces the save-boundary invariants: a recipe must have a
// name, and its numeric fields must not be negative. The cost engine itself
// never validates; this is the persistence gate.
func validateRecipe(recipe *model.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe cannot be nil")
	}
	if recipe.Name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}
	times := map[string]float64{
		"preheat time": recipe.PreheatTime,
		"bake time":    recipe.BakeTime,
		"mixer time":   recipe.MixerTime,
		"labor time":   recipe.LaborTime,
	}
	for name, value := range times {
		if value < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	rates := map[string]float64{
		"labor rate":     recipe.LaborRate,
		"gas rate":       recipe.GasRate,
		"electric rate":  recipe.ElectricRate,
		"packaging cost": recipe.PackagingCost,
	}
	for name, value := range rates {
		if value < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	for i, line := range recipe.Ingredients {
		if line.Quantity < 0 {
			return fmt.Errorf("ingredient %d (%s): quantity cannot be negative", i, line.Name)
		}
		if line.PackagePrice < 0 {
			return fmt.Errorf("ingredient %d (%s): package price cannot be negative", i, line.Name)
		}
	}
	for i, process := range recipe.Stovetop {
		if process.StoveType != "" && !process.StoveType.Valid() {
			return fmt.Errorf("stovetop process %d: invalid stove type %q", i, process.StoveType)
		}
		if process.Duration < 0 {
			return fmt.Errorf("stovetop process %d: duration cannot be negative", i)
		}
	}
	return nil
}

// validateIngredient enforces ingredient-database invariants.
func validateIngredient(ingredient *model.CatalogIngredient) error {
	if ingredient == nil {
		return fmt.Errorf("ingredient cannot be nil")
	}
	if ingredient.Name == "" {
		return fmt.Errorf("ingredient name cannot be empty")
	}
	if ingredient.PackageSize < 0 || ingredient.PackagePrice < 0 {
		return fmt.Errorf("ingredient %s: package fields cannot be negative", ingredient.Name)
	}
	return nil
}
