package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDensity(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		want       float64
		found      bool
	}{
		{name: "exact match", ingredient: "water", want: 1.0, found: true},
		{name: "substring match", ingredient: "cold tap water", want: 1.0, found: true},
		{name: "case insensitive", ingredient: "Whole MILK", want: 1.03, found: true},
		{name: "unknown ingredient", ingredient: "unobtainium", found: false},
		{name: "empty name", ingredient: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			density, ok := lookupDensity(tt.ingredient)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, density)
			}
		})
	}
}

func TestLookupDensityLongestMatchWins(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		want       float64
	}{
		// "brown sugar" must beat the shorter "sugar".
		{name: "brown sugar over sugar", ingredient: "dark brown sugar", want: 0.81},
		// "chocolate chips" must beat "chocolate".
		{name: "chocolate chips over chocolate", ingredient: "semi-sweet chocolate chips", want: 0.68},
		// "peanut butter" must beat "butter".
		{name: "peanut butter over butter", ingredient: "creamy peanut butter", want: 1.09},
		{name: "plain chocolate", ingredient: "baking chocolate", want: 0.65},
		{name: "plain butter", ingredient: "unsalted butter", want: 0.911},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			density, ok := lookupDensity(tt.ingredient)
			require.True(t, ok)
			assert.Equal(t, tt.want, density)
		})
	}
}
