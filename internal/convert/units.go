// Package convert resolves ingredient quantities between purchase and usage
// units. Units fall into two categories, weight and volume, each with a fixed
// table of conversion factors to a base unit (grams and milliliters). A
// density table bridges the two categories for known ingredients.
package convert

import "strings"

// weightUnits maps a lowercase unit alias to its factor in grams.
var weightUnits = map[string]float64{
	"mg":         0.001,
	"g":          1,
	"gram":       1,
	"grams":      1,
	"kg":         1000,
	"kilogram":   1000,
	"kilograms":  1000,
	"oz":         28.3495,
	"ounce":      28.3495,
	"ounces":     28.3495,
	"lb":         453.592,
	"lbs":        453.592,
	"pound":      453.592,
	"pounds":     453.592,
}

// volumeUnits maps a lowercase unit alias to its factor in milliliters.
var volumeUnits = map[string]float64{
	"ml":          1,
	"milliliter":  1,
	"milliliters": 1,
	"l":           1000,
	"liter":       1000,
	"liters":      1000,
	"tsp":         4.92892,
	"teaspoon":    4.92892,
	"teaspoons":   4.92892,
	"tbsp":        14.7868,
	"tablespoon":  14.7868,
	"tablespoons": 14.7868,
	"floz":        29.5735,
	"fl oz":       29.5735,
	"cup":         236.588,
	"cups":        236.588,
	"pint":        473.176,
	"pints":       473.176,
	"quart":       946.353,
	"quarts":      946.353,
	"gallon":      3785.41,
	"gallons":     3785.41,
}

// normalizeUnit trims and lowercases a unit string so table lookups are
// case- and whitespace-insensitive.
func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// weightFactor returns the grams-per-unit factor for a normalized unit.
func weightFactor(unit string) (float64, bool) {
	f, ok := weightUnits[unit]
	return f, ok
}

// volumeFactor returns the milliliters-per-unit factor for a normalized unit.
func volumeFactor(unit string) (float64, bool) {
	f, ok := volumeUnits[unit]
	return f, ok
}
