package convert

import (
	"sort"
	"strings"
)

// densityEntry pairs an ingredient-name substring with a density in g/mL.
type densityEntry struct {
	substring  string
	gramsPerML float64
}

// densities holds known ingredient densities. Lookup is by substring
// containment against the lowercased ingredient name, longest substring
// first, so "brown sugar" wins over "sugar" for "dark brown sugar". Ties in
// length keep table order.
var densities = []densityEntry{
	{"water", 1.0},
	{"whole milk", 1.03},
	{"milk", 1.03},
	{"heavy cream", 0.994},
	{"cream", 1.01},
	{"butter", 0.911},
	{"vegetable oil", 0.92},
	{"olive oil", 0.918},
	{"canola oil", 0.92},
	{"oil", 0.92},
	{"honey", 1.42},
	{"maple syrup", 1.37},
	{"corn syrup", 1.38},
	{"molasses", 1.41},
	{"all purpose flour", 0.53},
	{"all-purpose flour", 0.53},
	{"bread flour", 0.55},
	{"cake flour", 0.50},
	{"flour", 0.53},
	{"powdered sugar", 0.56},
	{"brown sugar", 0.81},
	{"granulated sugar", 0.85},
	{"sugar", 0.85},
	{"cocoa powder", 0.51},
	{"cocoa", 0.51},
	{"baking powder", 0.90},
	{"baking soda", 0.92},
	{"cornstarch", 0.64},
	{"salt", 1.22},
	{"yeast", 0.80},
	{"vanilla extract", 0.88},
	{"vanilla", 0.88},
	{"chocolate chips", 0.68},
	{"chocolate", 0.65},
	{"peanut butter", 1.09},
	{"oats", 0.41},
	{"rice", 0.85},
	{"egg", 1.03},
}

func init() {
	// Longest-match-first makes multi-word densities win over their
	// single-word substrings regardless of table order.
	sort.SliceStable(densities, func(i, j int) bool {
		return len(densities[i].substring) > len(densities[j].substring)
	})
}

// lookupDensity finds a density in g/mL for an ingredient display name. The
// match is case-insensitive substring containment, longest substring first.
func lookupDensity(ingredientName string) (float64, bool) {
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	if name == "" {
		return 0, false
	}
	for _, entry := range densities {
		if strings.Contains(name, entry.substring) {
			return entry.gramsPerML, true
		}
	}
	return 0, false
}
