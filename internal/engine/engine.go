// Package engine computes the fully-loaded production cost of a recipe:
// ingredients, energy, labor, and packaging, aggregated per batch and per
// yield unit.
package engine

import (
	"log/slog"

	"github.com/ladlehq/ladle/internal/convert"
	"github.com/ladlehq/ladle/internal/model"
)

// Generic gas oven model. The oven is not configurable per recipe beyond its
// preheat and bake times.
const (
	ovenBTUPerHour = 25000.0
	ovenEfficiency = 0.65
)

// mixerWattage is the fixed draw of the stand mixer.
const mixerWattage = 300.0

// btuPerTherm converts BTU to therms for gas pricing.
const btuPerTherm = 100000.0

// Calculator computes cost breakdowns. It holds no state between calls and
// is safe for concurrent use; the settings snapshot is supplied per call.
type Calculator struct{}

// New creates a cost calculator.
func New() *Calculator {
	return &Calculator{}
}

// Cost computes the full cost breakdown for a recipe against a settings
// snapshot. It never fails: malformed numeric input degrades to zero and
// unresolvable unit conversions pass the quantity through unchanged, so the
// caller always gets a total it can display and correct.
func (c *Calculator) Cost(recipe *model.Recipe, settings model.Settings) model.CostBreakdown {
	var breakdown model.CostBreakdown

	laborRate := fallback(recipe.LaborRate, settings.LaborRate)
	gasRate := fallback(recipe.GasRate, settings.GasRate)
	electricRate := fallback(recipe.ElectricRate, settings.ElectricRate)

	breakdown.Ingredients = c.ingredientCosts(recipe.Ingredients)
	for _, line := range breakdown.Ingredients {
		breakdown.IngredientTotal += line.Cost
	}

	breakdown.Energy = c.energyCosts(recipe, settings, gasRate, electricRate)
	for _, source := range breakdown.Energy {
		breakdown.EnergyTotal += source.Cost
	}

	breakdown.LaborCost = recipe.LaborTime / 60 * laborRate
	breakdown.PackagingTotal = recipe.PackagingCost * recipe.YieldQuantity

	breakdown.GrandTotal = breakdown.IngredientTotal + breakdown.EnergyTotal +
		breakdown.LaborCost + breakdown.PackagingTotal
	breakdown.GrandTotalWithoutLabor = breakdown.GrandTotal - breakdown.LaborCost

	if recipe.YieldQuantity > 0 {
		breakdown.CostPerUnit = breakdown.GrandTotal / recipe.YieldQuantity
		breakdown.CostPerUnitWithoutLabor = breakdown.GrandTotalWithoutLabor / recipe.YieldQuantity
	}

	return breakdown
}

// ingredientCosts converts each line's usage quantity into its package unit
// and prices it against the package. Line order is preserved for display.
func (c *Calculator) ingredientCosts(lines []model.IngredientLine) []model.IngredientCost {
	costs := make([]model.IngredientCost, 0, len(lines))
	for _, line := range lines {
		result := convert.Convert(line.Quantity, line.UsageUnit, line.PackageUnit, line.Name)
		if !result.Converted() {
			slog.Warn("unit conversion unresolved, using quantity as-is",
				"ingredient", line.Name,
				"from", line.UsageUnit,
				"to", line.PackageUnit,
				"reason", result.Reason)
		}

		var unitPrice float64
		if line.PackageSize > 0 {
			unitPrice = line.PackagePrice / line.PackageSize
		}

		costs = append(costs, model.IngredientCost{
			Name:              line.Name,
			Quantity:          line.Quantity,
			Unit:              line.UsageUnit,
			ConvertedQuantity: result.Value,
			ConvertedUnit:     line.PackageUnit,
			Cost:              result.Value * unitPrice,
			Note:              result.Reason,
		})
	}
	return costs
}

// energyCosts models the oven, the mixer, and every stovetop process as
// independent energy sources.
func (c *Calculator) energyCosts(recipe *model.Recipe, settings model.Settings, gasRate, electricRate float64) []model.EnergyCost {
	var sources []model.EnergyCost

	if ovenMinutes := recipe.PreheatTime + recipe.BakeTime; ovenMinutes > 0 {
		therms := ovenMinutes / 60 * ovenBTUPerHour / btuPerTherm / ovenEfficiency
		sources = append(sources, model.EnergyCost{
			Label:         "Oven",
			ConsumedUnits: therms,
			ConsumedUnit:  "therms",
			Cost:          therms * gasRate,
		})
	}

	if recipe.MixerTime > 0 {
		kwh := mixerWattage * recipe.MixerTime / 60 / 1000
		sources = append(sources, model.EnergyCost{
			Label:         "Mixer",
			ConsumedUnits: kwh,
			ConsumedUnit:  "kWh",
			Cost:          kwh * electricRate,
		})
	}

	for _, process := range recipe.Stovetop {
		sources = append(sources, stovetopCost(process, settings, gasRate, electricRate))
	}

	return sources
}

// stovetopCost prices a single stovetop process. A process with no stove type
// uses the settings default; the burner rating comes from the per-process
// override when set, otherwise from the settings default for the stove type,
// and power level scales the rated output.
func stovetopCost(process model.StoveProcess, settings model.Settings, gasRate, electricRate float64) model.EnergyCost {
	label := process.Name
	if label == "" {
		label = "Stovetop"
	}

	stoveType := process.StoveType
	if stoveType == "" {
		stoveType = settings.DefaultStoveType
	}

	powerFraction := process.PowerLevel / 100
	hours := process.Duration / 60
	efficiency := settings.BurnerEfficiency(stoveType)

	if stoveType == model.StoveTypeGas {
		rating := fallback(process.BurnerBTU, settings.GasBurnerBTU)
		var therms float64
		if efficiency > 0 {
			therms = rating * powerFraction * hours / btuPerTherm / efficiency
		}
		return model.EnergyCost{
			Label:         label,
			ConsumedUnits: therms,
			ConsumedUnit:  "therms",
			Cost:          therms * gasRate,
		}
	}

	rating := fallback(process.BurnerWattage, settings.BurnerRating(stoveType))
	var kwh float64
	if efficiency > 0 {
		kwh = rating * powerFraction * hours / 1000 / efficiency
	}
	return model.EnergyCost{
		Label:         label,
		ConsumedUnits: kwh,
		ConsumedUnit:  "kWh",
		Cost:          kwh * electricRate,
	}
}

// fallback returns value unless it is zero, in which case def is used.
func fallback(value, def float64) float64 {
	if value > 0 {
		return value
	}
	return def
}
