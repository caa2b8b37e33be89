// Package testutil provides test fixtures shared across packages.
package testutil

import (
	"context"
	"testing"

	"github.com/ladlehq/ladle/internal/model"
	"github.com/ladlehq/ladle/internal/service"
	"github.com/ladlehq/ladle/internal/storage"
)

// TestDB wraps a migrated in-memory database for tests.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database with migrations applied
// and cleanup registered.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// SeedIngredients inserts catalog ingredients, failing the test on error.
func (db *TestDB) SeedIngredients(ingredients ...model.CatalogIngredient) {
	db.t.Helper()

	ctx := context.Background()
	for i := range ingredients {
		if err := db.Storage.SaveIngredient(ctx, &ingredients[i]); err != nil {
			db.t.Fatalf("failed to seed ingredient %q: %v", ingredients[i].Name, err)
		}
	}
}

// SeedRecipes inserts recipes, failing the test on error.
func (db *TestDB) SeedRecipes(recipes ...model.Recipe) {
	db.t.Helper()

	ctx := context.Background()
	for i := range recipes {
		if err := db.Storage.SaveRecipe(ctx, &recipes[i]); err != nil {
			db.t.Fatalf("failed to seed recipe %q: %v", recipes[i].Name, err)
		}
	}
}
