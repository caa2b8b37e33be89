package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS recipes (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT UNIQUE NOT NULL,
					preheat_time REAL NOT NULL DEFAULT 0,
					bake_time REAL NOT NULL DEFAULT 0,
					mixer_time REAL NOT NULL DEFAULT 0,
					labor_time REAL NOT NULL DEFAULT 0,
					labor_rate REAL NOT NULL DEFAULT 0,
					gas_rate REAL NOT NULL DEFAULT 0,
					electric_rate REAL NOT NULL DEFAULT 0,
					packaging_cost REAL NOT NULL DEFAULT 0,
					yield_quantity REAL NOT NULL DEFAULT 0,
					yield_unit TEXT NOT NULL DEFAULT '',
					total_cost REAL NOT NULL DEFAULT 0,
					cost_per_unit REAL NOT NULL DEFAULT 0,
					cost_per_unit_without_labor REAL NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_recipes_name ON recipes(name)`,

				`CREATE TABLE IF NOT EXISTS recipe_ingredients (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					recipe_id INTEGER NOT NULL,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					quantity REAL NOT NULL DEFAULT 0,
					usage_unit TEXT NOT NULL DEFAULT '',
					package_size REAL NOT NULL DEFAULT 0,
					package_unit TEXT NOT NULL DEFAULT '',
					package_price REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add stovetop processes",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS recipe_stovetop (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					recipe_id INTEGER NOT NULL,
					position INTEGER NOT NULL,
					name TEXT NOT NULL DEFAULT '',
					stove_type TEXT NOT NULL DEFAULT 'gas',
					burner_btu REAL NOT NULL DEFAULT 0,
					burner_wattage REAL NOT NULL DEFAULT 0,
					power_level REAL NOT NULL DEFAULT 0,
					duration REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_recipe_stovetop_recipe ON recipe_stovetop(recipe_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add ingredient database and settings",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS ingredients (
					name TEXT PRIMARY KEY,
					package_size REAL NOT NULL DEFAULT 0,
					package_unit TEXT NOT NULL DEFAULT '',
					package_price REAL NOT NULL DEFAULT 0,
					last_updated DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS settings (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					labor_rate REAL NOT NULL DEFAULT 0,
					gas_rate REAL NOT NULL DEFAULT 0,
					electric_rate REAL NOT NULL DEFAULT 0,
					default_stove_type TEXT NOT NULL DEFAULT 'gas',
					gas_burner_btu REAL NOT NULL DEFAULT 0,
					gas_burner_efficiency REAL NOT NULL DEFAULT 0,
					electric_burner_wattage REAL NOT NULL DEFAULT 0,
					electric_burner_efficiency REAL NOT NULL DEFAULT 0,
					induction_burner_wattage REAL NOT NULL DEFAULT 0,
					induction_burner_efficiency REAL NOT NULL DEFAULT 0,
					packaging_options TEXT NOT NULL DEFAULT '[]',
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Ensure schema_migrations table exists
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
			migration.Version, migration.Description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("applied migration", "version", migration.Version, "description", migration.Description)
	}

	return nil
}
