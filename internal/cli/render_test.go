package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ladlehq/ladle/internal/model"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$2.20", Money(2.2046))
	assert.Equal(t, "$10.00", Money(9.999))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "500", Quantity(500))
	assert.Equal(t, "0.5", Quantity(0.5))
	assert.Equal(t, "236.588", Quantity(236.588))
}

func TestRenderBreakdown(t *testing.T) {
	recipe := &model.Recipe{
		Name:          "Test Loaf",
		YieldQuantity: 2,
		YieldUnit:     "loaves",
	}
	breakdown := model.CostBreakdown{
		Ingredients: []model.IngredientCost{
			{Name: "flour", Quantity: 500, Unit: "g", ConvertedQuantity: 500, ConvertedUnit: "g", Cost: 2.2},
		},
		Energy: []model.EnergyCost{
			{Label: "Oven", ConsumedUnits: 0.3846, ConsumedUnit: "therms", Cost: 0.58},
		},
		IngredientTotal: 2.2,
		EnergyTotal:     0.58,
		LaborCost:       10,
		GrandTotal:      12.78,
		CostPerUnit:     6.39,
	}

	var buf bytes.Buffer
	RenderBreakdown(&buf, recipe, breakdown)

	out := buf.String()
	assert.Contains(t, out, "Test Loaf")
	assert.Contains(t, out, "flour")
	assert.Contains(t, out, "Oven")
	assert.Contains(t, out, "$12.78")
	assert.Contains(t, out, "loaves")
}

func TestRenderRecipeList(t *testing.T) {
	var buf bytes.Buffer
	RenderRecipeList(&buf, []model.Recipe{
		{Name: "Baguette", YieldQuantity: 4, YieldUnit: "loaves", TotalCost: 5.5, CostPerUnit: 1.375},
	})

	out := buf.String()
	assert.Contains(t, out, "Baguette")
	assert.Contains(t, out, "$5.50")
	assert.Contains(t, out, "$1.38")
}
