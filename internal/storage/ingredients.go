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

// SaveIngredient upserts a reusable ingredient-database entry keyed by name.
func (s *SQLiteStorage) SaveIngredient(ctx context.Context, ingredient *model.CatalogIngredient) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingredients (name, package_size, package_unit, package_price, last_updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			package_size = excluded.package_size,
			package_unit = excluded.package_unit,
			package_price = excluded.package_price,
			last_updated = excluded.last_updated`,
		ingredient.Name, ingredient.PackageSize, ingredient.PackageUnit,
		ingredient.PackagePrice, now)
	if err != nil {
		return fmt.Errorf("failed to save ingredient: %w", err)
	}

	ingredient.LastUpdated = now
	slog.Debug("saved ingredient", "name", ingredient.Name)
	return nil
}

// GetIngredient returns one ingredient-database entry, or common.ErrNotFound.
func (s *SQLiteStorage) GetIngredient(ctx context.Context, name string) (*model.CatalogIngredient, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var ingredient model.CatalogIngredient
	err := s.db.QueryRowContext(ctx, `
		SELECT name, package_size, package_unit, package_price, last_updated
		FROM ingredients WHERE name = ?`, name).Scan(
		&ingredient.Name, &ingredient.PackageSize, &ingredient.PackageUnit,
		&ingredient.PackagePrice, &ingredient.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ingredient %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredient: %w", err)
	}

	return &ingredient, nil
}

// ListIngredients returns all ingredient-database entries ordered by name.
func (s *SQLiteStorage) ListIngredients(ctx context.Context) ([]model.CatalogIngredient, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, package_size, package_unit, package_price, last_updated
		FROM ingredients
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.CatalogIngredient
	for rows.Next() {
		var ingredient model.CatalogIngredient
		if err := rows.Scan(&ingredient.Name, &ingredient.PackageSize,
			&ingredient.PackageUnit, &ingredient.PackagePrice,
			&ingredient.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}

	return ingredients, nil
}

// DeleteIngredient removes an ingredient-database entry.
func (s *SQLiteStorage) DeleteIngredient(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("ingredient %q: %w", name, common.ErrNotFound)
	}

	return nil
}
