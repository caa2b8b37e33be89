package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehq/ladle/internal/model"
	"github.com/ladlehq/ladle/internal/testutil"
)

func TestPrefillFromCatalog(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	db.SeedIngredients(
		model.CatalogIngredient{Name: "bread flour", PackageSize: 2268, PackageUnit: "g", PackagePrice: 10},
		model.CatalogIngredient{Name: "butter", PackageSize: 454, PackageUnit: "g", PackagePrice: 5},
	)

	recipe := &model.Recipe{
		Name: "Test",
		Ingredients: []model.IngredientLine{
			// Missing package fields, known to the catalog.
			{Name: "bread flour", Quantity: 500, UsageUnit: "g"},
			// Explicit package data wins over the catalog.
			{Name: "butter", Quantity: 100, UsageUnit: "g", PackageSize: 250, PackageUnit: "g", PackagePrice: 3},
			// Unknown to the catalog, left alone.
			{Name: "saffron", Quantity: 1, UsageUnit: "g"},
		},
	}

	require.NoError(t, prefillFromCatalog(ctx, db.Storage, recipe))

	assert.Equal(t, 2268.0, recipe.Ingredients[0].PackageSize)
	assert.Equal(t, "g", recipe.Ingredients[0].PackageUnit)
	assert.Equal(t, 10.0, recipe.Ingredients[0].PackagePrice)

	assert.Equal(t, 250.0, recipe.Ingredients[1].PackageSize)
	assert.Equal(t, 3.0, recipe.Ingredients[1].PackagePrice)

	assert.Zero(t, recipe.Ingredients[2].PackageSize)
}
