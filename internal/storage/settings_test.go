package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehq/ladle/internal/model"
)

func TestGetSettingsSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)

	defaults := model.DefaultSettings()
	assert.Equal(t, defaults.LaborRate, settings.LaborRate)
	assert.Equal(t, defaults.GasRate, settings.GasRate)
	assert.Equal(t, defaults.DefaultStoveType, settings.DefaultStoveType)
	assert.Equal(t, defaults.GasBurnerBTU, settings.GasBurnerBTU)
	assert.Equal(t, defaults.PackagingOptions, settings.PackagingOptions)

	// Second read comes from the database, not another seed.
	again, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.LaborRate, again.LaborRate)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)

	settings.LaborRate = 25
	settings.ElectricRate = 0.21
	settings.DefaultStoveType = model.StoveTypeInduction
	settings.PackagingOptions = []model.PackagingOption{{Name: "jar", Cost: 1.5}}
	require.NoError(t, store.UpdateSettings(ctx, settings))

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.LaborRate)
	assert.Equal(t, 0.21, got.ElectricRate)
	assert.Equal(t, model.StoveTypeInduction, got.DefaultStoveType)
	require.Len(t, got.PackagingOptions, 1)
	assert.Equal(t, "jar", got.PackagingOptions[0].Name)
}

func TestUpdateSettingsRejectsInvalidStoveType(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	settings := model.DefaultSettings()
	settings.DefaultStoveType = "campfire"
	require.Error(t, store.UpdateSettings(ctx, &settings))
}

func TestUpdateSettingsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := model.DefaultSettings()
	first.GasRate = 1.1
	require.NoError(t, store.UpdateSettings(ctx, &first))

	second := model.DefaultSettings()
	second.GasRate = 2.2
	require.NoError(t, store.UpdateSettings(ctx, &second))

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.2, got.GasRate)
}
