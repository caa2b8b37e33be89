package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIdentity(t *testing.T) {
	tests := []struct {
		name     string
		fromUnit string
		toUnit   string
		quantity float64
	}{
		{name: "same known unit", fromUnit: "g", toUnit: "g", quantity: 42},
		{name: "case and whitespace insensitive", fromUnit: " Cup ", toUnit: "cup", quantity: 2},
		{name: "same unknown unit", fromUnit: "scoop", toUnit: "scoop", quantity: 3},
		{name: "zero quantity", fromUnit: "tbsp", toUnit: "tbsp", quantity: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Convert(tt.quantity, tt.fromUnit, tt.toUnit, "anything")
			assert.True(t, result.Converted())
			assert.Equal(t, tt.quantity, result.Value)
		})
	}
}

func TestConvertWithinCategory(t *testing.T) {
	tests := []struct {
		name     string
		fromUnit string
		toUnit   string
		quantity float64
		want     float64
	}{
		{name: "kg to g", fromUnit: "kg", toUnit: "g", quantity: 2, want: 2000},
		{name: "g to kg", fromUnit: "g", toUnit: "kg", quantity: 500, want: 0.5},
		{name: "lb to oz", fromUnit: "lb", toUnit: "oz", quantity: 1, want: 16},
		{name: "weight aliases", fromUnit: "grams", toUnit: "kilograms", quantity: 1500, want: 1.5},
		{name: "liter to ml", fromUnit: "l", toUnit: "ml", quantity: 1.5, want: 1500},
		{name: "cup to tbsp", fromUnit: "cup", toUnit: "tbsp", quantity: 1, want: 16},
		{name: "gallon to quarts", fromUnit: "gallon", toUnit: "quart", quantity: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Convert(tt.quantity, tt.fromUnit, tt.toUnit, "")
			require.True(t, result.Converted())
			assert.InDelta(t, tt.want, result.Value, tt.want*0.001)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	result := Convert(123.4, "oz", "kg", "flour")
	require.True(t, result.Converted())

	back := Convert(result.Value, "kg", "oz", "flour")
	require.True(t, back.Converted())
	assert.InDelta(t, 123.4, back.Value, 1e-9)
}

func TestConvertAcrossCategories(t *testing.T) {
	t.Run("cup of water to grams", func(t *testing.T) {
		// density(water) = 1.0 g/mL and cup = 236.588 mL
		result := Convert(1, "cup", "g", "water")
		require.True(t, result.Converted())
		assert.InDelta(t, 236.588, result.Value, 1e-9)
	})

	t.Run("grams of water back to cups", func(t *testing.T) {
		grams := Convert(1, "cup", "g", "water")
		require.True(t, grams.Converted())

		cups := Convert(grams.Value, "g", "cup", "water")
		require.True(t, cups.Converted())
		assert.InDelta(t, 1.0, cups.Value, 1e-9)
	})

	t.Run("weight to volume divides by density", func(t *testing.T) {
		// 460 g of oil at 0.92 g/mL is 500 mL
		result := Convert(460, "g", "ml", "vegetable oil")
		require.True(t, result.Converted())
		assert.InDelta(t, 500, result.Value, 1e-9)
	})

	t.Run("density match is case insensitive", func(t *testing.T) {
		result := Convert(1, "cup", "g", "Filtered WATER")
		require.True(t, result.Converted())
		assert.InDelta(t, 236.588, result.Value, 1e-9)
	})
}

func TestConvertUnresolved(t *testing.T) {
	t.Run("unknown unit is a no-op", func(t *testing.T) {
		result := Convert(5, "xyz", "g", "flour")
		assert.False(t, result.Converted())
		assert.Equal(t, 5.0, result.Value)
		assert.Contains(t, result.Reason, "xyz")
	})

	t.Run("unknown target unit is a no-op", func(t *testing.T) {
		result := Convert(5, "g", "handful", "flour")
		assert.False(t, result.Converted())
		assert.Equal(t, 5.0, result.Value)
		assert.Contains(t, result.Reason, "handful")
	})

	t.Run("missing density is a no-op", func(t *testing.T) {
		result := Convert(2, "cup", "g", "mystery powder")
		assert.False(t, result.Converted())
		assert.Equal(t, 2.0, result.Value)
		assert.Contains(t, result.Reason, "mystery powder")
	})
}
