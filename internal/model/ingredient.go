package model

import "time"

// CatalogIngredient is a reusable ingredient-database entry used to pre-fill
// the package fields of recipe lines. Keyed by name.
type CatalogIngredient struct {
	LastUpdated  time.Time
	Name         string
	PackageUnit  string
	PackageSize  float64
	PackagePrice float64
}
