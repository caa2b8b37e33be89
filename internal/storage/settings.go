package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ladlehq/ladle/internal/model"
)

// GetSettings returns the single settings row. On first read it seeds the
// built-in defaults, so callers always see a fully populated record.
func (s *SQLiteStorage) GetSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	settings, err := s.querySettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	// First use: seed defaults.
	defaults := model.DefaultSettings()
	if err := s.UpdateSettings(ctx, &defaults); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}
	slog.Info("seeded default settings")
	return &defaults, nil
}

func (s *SQLiteStorage) querySettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	var stoveType string
	var packagingJSON string

	err := s.db.QueryRowContext(ctx, `
		SELECT labor_rate, gas_rate, electric_rate, default_stove_type,
			gas_burner_btu, gas_burner_efficiency,
			electric_burner_wattage, electric_burner_efficiency,
			induction_burner_wattage, induction_burner_efficiency,
			packaging_options, updated_at
		FROM settings WHERE id = 1`).Scan(
		&settings.LaborRate, &settings.GasRate, &settings.ElectricRate, &stoveType,
		&settings.GasBurnerBTU, &settings.GasBurnerEfficiency,
		&settings.ElectricBurnerWattage, &settings.ElectricBurnerEfficiency,
		&settings.InductionBurnerWattage, &settings.InductionBurnerEfficiency,
		&packagingJSON, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}

	settings.DefaultStoveType = model.StoveType(stoveType)
	if err := json.Unmarshal([]byte(packagingJSON), &settings.PackagingOptions); err != nil {
		return nil, fmt.Errorf("failed to decode packaging options: %w", err)
	}
	return &settings, nil
}

// UpdateSettings writes the full settings row, last write wins.
func (s *SQLiteStorage) UpdateSettings(ctx context.Context, settings *model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if settings.DefaultStoveType != "" && !settings.DefaultStoveType.Valid() {
		return fmt.Errorf("invalid default stove type %q", settings.DefaultStoveType)
	}

	packagingJSON, err := json.Marshal(settings.PackagingOptions)
	if err != nil {
		return fmt.Errorf("failed to encode packaging options: %w", err)
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (
			id, labor_rate, gas_rate, electric_rate, default_stove_type,
			gas_burner_btu, gas_burner_efficiency,
			electric_burner_wattage, electric_burner_efficiency,
			induction_burner_wattage, induction_burner_efficiency,
			packaging_options, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			labor_rate = excluded.labor_rate,
			gas_rate = excluded.gas_rate,
			electric_rate = excluded.electric_rate,
			default_stove_type = excluded.default_stove_type,
			gas_burner_btu = excluded.gas_burner_btu,
			gas_burner_efficiency = excluded.gas_burner_efficiency,
			electric_burner_wattage = excluded.electric_burner_wattage,
			electric_burner_efficiency = excluded.electric_burner_efficiency,
			induction_burner_wattage = excluded.induction_burner_wattage,
			induction_burner_efficiency = excluded.induction_burner_efficiency,
			packaging_options = excluded.packaging_options,
			updated_at = excluded.updated_at`,
		settings.LaborRate, settings.GasRate, settings.ElectricRate,
		string(settings.DefaultStoveType),
		settings.GasBurnerBTU, settings.GasBurnerEfficiency,
		settings.ElectricBurnerWattage, settings.ElectricBurnerEfficiency,
		settings.InductionBurnerWattage, settings.InductionBurnerEfficiency,
		string(packagingJSON), now)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	settings.UpdatedAt = now
	return nil
}
