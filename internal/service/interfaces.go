// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/ladlehq/ladle/internal/model"
)

// Storage defines the contract for the catalog persistence layer.
type Storage interface {
	// Recipe operations. SaveRecipe is an upsert keyed by recipe name and
	// persists the computed cost snapshot along with the recipe.
	SaveRecipe(ctx context.Context, recipe *model.Recipe) error
	GetRecipeByName(ctx context.Context, name string) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	DeleteRecipe(ctx context.Context, name string) error

	// Ingredient database operations, used to pre-fill package fields.
	SaveIngredient(ctx context.Context, ingredient *model.CatalogIngredient) error
	GetIngredient(ctx context.Context, name string) (*model.CatalogIngredient, error)
	ListIngredients(ctx context.Context) ([]model.CatalogIngredient, error)
	DeleteIngredient(ctx context.Context, name string) error

	// Settings operations. GetSettings seeds built-in defaults on first read.
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, settings *model.Settings) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
