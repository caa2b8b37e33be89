package recipefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehq/ladle/internal/model"
)

const sampleYAML = `
name: Sourdough Loaf
yield:
  quantity: 2
  unit: loaves
oven:
  preheat_time: 30
  bake_time: 45
mixer_time: 12
labor:
  time: 40
  rate: 18
rates:
  gas: 1.5
  electric: 0.15
packaging_cost: 0.25
ingredients:
  - name: bread flour
    quantity: 500
    unit: g
    package_size: 2268
    package_unit: g
    package_price: 10
  - name: water
    quantity: 1.5
    unit: cup
    package_unit: g
stovetop:
  - name: Scald milk
    stove_type: gas
    burner_btu: 12000
    power_level: 70
    duration: 10
`

func TestParse(t *testing.T) {
	recipe, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sourdough Loaf", recipe.Name)
	assert.Equal(t, 2.0, recipe.YieldQuantity)
	assert.Equal(t, "loaves", recipe.YieldUnit)
	assert.Equal(t, 30.0, recipe.PreheatTime)
	assert.Equal(t, 45.0, recipe.BakeTime)
	assert.Equal(t, 12.0, recipe.MixerTime)
	assert.Equal(t, 40.0, recipe.LaborTime)
	assert.Equal(t, 18.0, recipe.LaborRate)
	assert.Equal(t, 1.5, recipe.GasRate)
	assert.Equal(t, 0.25, recipe.PackagingCost)

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "bread flour", recipe.Ingredients[0].Name)
	assert.Equal(t, "g", recipe.Ingredients[0].UsageUnit)
	assert.Equal(t, 2268.0, recipe.Ingredients[0].PackageSize)
	// Package fields may be left for the ingredient database to fill.
	assert.Zero(t, recipe.Ingredients[1].PackageSize)

	require.Len(t, recipe.Stovetop, 1)
	assert.Equal(t, model.StoveTypeGas, recipe.Stovetop[0].StoveType)
	assert.Equal(t, 70.0, recipe.Stovetop[0].PowerLevel)
}

func TestParseRejectsUnknownStoveType(t *testing.T) {
	_, err := Parse([]byte(`
name: Test
stovetop:
  - stove_type: campfire
    duration: 5
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campfire")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/recipe.yaml")
	require.Error(t, err)
}
