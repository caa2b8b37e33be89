package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehq/ladle/internal/common"
	"github.com/ladlehq/ladle/internal/model"
)

func TestSaveAndGetIngredient(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ingredient := &model.CatalogIngredient{
		Name:         "bread flour",
		PackageSize:  2268,
		PackageUnit:  "g",
		PackagePrice: 10,
	}
	require.NoError(t, store.SaveIngredient(ctx, ingredient))

	got, err := store.GetIngredient(ctx, "bread flour")
	require.NoError(t, err)
	assert.Equal(t, 2268.0, got.PackageSize)
	assert.Equal(t, "g", got.PackageUnit)
	assert.Equal(t, 10.0, got.PackagePrice)
	assert.False(t, got.LastUpdated.IsZero())
}

func TestSaveIngredientUpsertsByName(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveIngredient(ctx, &model.CatalogIngredient{
		Name: "sugar", PackageSize: 1000, PackageUnit: "g", PackagePrice: 3,
	}))
	require.NoError(t, store.SaveIngredient(ctx, &model.CatalogIngredient{
		Name: "sugar", PackageSize: 2000, PackageUnit: "g", PackagePrice: 5,
	}))

	got, err := store.GetIngredient(ctx, "sugar")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.PackageSize)
	assert.Equal(t, 5.0, got.PackagePrice)

	ingredients, err := store.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
}

func TestSaveIngredientValidation(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.Error(t, store.SaveIngredient(ctx, nil))
	require.Error(t, store.SaveIngredient(ctx, &model.CatalogIngredient{Name: ""}))
	require.Error(t, store.SaveIngredient(ctx, &model.CatalogIngredient{
		Name: "flour", PackagePrice: -1,
	}))
}

func TestListIngredientsOrderedByName(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for _, name := range []string{"yeast", "butter", "flour"} {
		require.NoError(t, store.SaveIngredient(ctx, &model.CatalogIngredient{
			Name: name, PackageSize: 1, PackageUnit: "g",
		}))
	}

	ingredients, err := store.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "butter", ingredients[0].Name)
	assert.Equal(t, "flour", ingredients[1].Name)
	assert.Equal(t, "yeast", ingredients[2].Name)
}

func TestDeleteIngredient(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveIngredient(ctx, &model.CatalogIngredient{
		Name: "salt", PackageSize: 737, PackageUnit: "g", PackagePrice: 2.5,
	}))
	require.NoError(t, store.DeleteIngredient(ctx, "salt"))

	_, err := store.GetIngredient(ctx, "salt")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, store.DeleteIngredient(ctx, "salt"), common.ErrNotFound)
}
