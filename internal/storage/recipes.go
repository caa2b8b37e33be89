package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ladlehq/ladle/internal/common"
	"github.com/ladlehq/ladle/internal/model"
)

// SaveRecipe persists a recipe and its cost snapshot. Saving is an upsert
// keyed by recipe name: an existing catalog entry with the same name is
// overwritten, including its child ingredient and stovetop rows.
func (s *SQLiteStorage) SaveRecipe(ctx context.Context, recipe *model.Recipe) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (
			name, preheat_time, bake_time, mixer_time, labor_time, labor_rate,
			gas_rate, electric_rate, packaging_cost, yield_quantity, yield_unit,
			total_cost, cost_per_unit, cost_per_unit_without_labor, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			preheat_time = excluded.preheat_time,
			bake_time = excluded.bake_time,
			mixer_time = excluded.mixer_time,
			labor_time = excluded.labor_time,
			labor_rate = excluded.labor_rate,
			gas_rate = excluded.gas_rate,
			electric_rate = excluded.electric_rate,
			packaging_cost = excluded.packaging_cost,
			yield_quantity = excluded.yield_quantity,
			yield_unit = excluded.yield_unit,
			total_cost = excluded.total_cost,
			cost_per_unit = excluded.cost_per_unit,
			cost_per_unit_without_labor = excluded.cost_per_unit_without_labor,
			updated_at = excluded.updated_at`,
		recipe.Name, recipe.PreheatTime, recipe.BakeTime, recipe.MixerTime,
		recipe.LaborTime, recipe.LaborRate, recipe.GasRate, recipe.ElectricRate,
		recipe.PackagingCost, recipe.YieldQuantity, recipe.YieldUnit,
		recipe.TotalCost, recipe.CostPerUnit, recipe.CostPerUnitWithoutLabor,
		now, now)
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	// LastInsertId is unreliable after ON CONFLICT UPDATE; resolve by name.
	recipeID, err := recipeIDByName(ctx, tx, recipe.Name)
	if err != nil {
		return err
	}

	// Replace child rows wholesale; line order is the display order.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	for i, line := range recipe.Ingredients {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (
				recipe_id, position, name, quantity, usage_unit,
				package_size, package_unit, package_price
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			recipeID, i, line.Name, line.Quantity, line.UsageUnit,
			line.PackageSize, line.PackageUnit, line.PackagePrice); err != nil {
			return fmt.Errorf("failed to save ingredient line %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recipe_stovetop WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to clear stovetop processes: %w", err)
	}
	for i, process := range recipe.Stovetop {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_stovetop (
				recipe_id, position, name, stove_type, burner_btu,
				burner_wattage, power_level, duration
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			recipeID, i, process.Name, string(process.StoveType), process.BurnerBTU,
			process.BurnerWattage, process.PowerLevel, process.Duration); err != nil {
			return fmt.Errorf("failed to save stovetop process %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe: %w", err)
	}

	recipe.ID = recipeID
	recipe.UpdatedAt = now
	slog.Debug("saved recipe", "name", recipe.Name, "id", recipeID)
	return nil
}

func recipeIDByName(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM recipes WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to resolve recipe ID: %w", err)
	}
	return id, nil
}

// GetRecipeByName returns a recipe with its ingredient and stovetop rows in
// insertion order, or common.ErrNotFound.
func (s *SQLiteStorage) GetRecipeByName(ctx context.Context, name string) (*model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var recipe model.Recipe
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, preheat_time, bake_time, mixer_time, labor_time,
			labor_rate, gas_rate, electric_rate, packaging_cost, yield_quantity,
			yield_unit, total_cost, cost_per_unit, cost_per_unit_without_labor,
			created_at, updated_at
		FROM recipes WHERE name = ?`, name).Scan(
		&recipe.ID, &recipe.Name, &recipe.PreheatTime, &recipe.BakeTime,
		&recipe.MixerTime, &recipe.LaborTime, &recipe.LaborRate, &recipe.GasRate,
		&recipe.ElectricRate, &recipe.PackagingCost, &recipe.YieldQuantity,
		&recipe.YieldUnit, &recipe.TotalCost, &recipe.CostPerUnit,
		&recipe.CostPerUnitWithoutLabor, &recipe.CreatedAt, &recipe.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe: %w", err)
	}

	if recipe.Ingredients, err = s.recipeIngredients(ctx, recipe.ID); err != nil {
		return nil, err
	}
	if recipe.Stovetop, err = s.recipeStovetop(ctx, recipe.ID); err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (s *SQLiteStorage) recipeIngredients(ctx context.Context, recipeID int64) ([]model.IngredientLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, quantity, usage_unit, package_size, package_unit, package_price
		FROM recipe_ingredients
		WHERE recipe_id = ?
		ORDER BY position`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer rows.Close()

	var lines []model.IngredientLine
	for rows.Next() {
		var line model.IngredientLine
		if err := rows.Scan(&line.Name, &line.Quantity, &line.UsageUnit,
			&line.PackageSize, &line.PackageUnit, &line.PackagePrice); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredient lines: %w", err)
	}
	return lines, nil
}

func (s *SQLiteStorage) recipeStovetop(ctx context.Context, recipeID int64) ([]model.StoveProcess, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, stove_type, burner_btu, burner_wattage, power_level, duration
		FROM recipe_stovetop
		WHERE recipe_id = ?
		ORDER BY position`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stovetop processes: %w", err)
	}
	defer rows.Close()

	var processes []model.StoveProcess
	for rows.Next() {
		var process model.StoveProcess
		var stoveType string
		if err := rows.Scan(&process.Name, &stoveType, &process.BurnerBTU,
			&process.BurnerWattage, &process.PowerLevel, &process.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan stovetop process: %w", err)
		}
		process.StoveType = model.StoveType(stoveType)
		processes = append(processes, process)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stovetop processes: %w", err)
	}
	return processes, nil
}

// ListRecipes returns all recipes ordered by name, without child rows. The
// persisted cost snapshot is included so listings don't recompute.
func (s *SQLiteStorage) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, yield_quantity, yield_unit, total_cost, cost_per_unit,
			cost_per_unit_without_labor, updated_at
		FROM recipes
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var recipe model.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.YieldQuantity,
			&recipe.YieldUnit, &recipe.TotalCost, &recipe.CostPerUnit,
			&recipe.CostPerUnitWithoutLabor, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	slog.Debug("retrieved recipes", "count", len(recipes))
	return recipes, nil
}

// DeleteRecipe removes a recipe and its child rows.
func (s *SQLiteStorage) DeleteRecipe(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("recipe %q: %w", name, common.ErrNotFound)
	}

	slog.Info("deleted recipe", "name", name)
	return nil
}
