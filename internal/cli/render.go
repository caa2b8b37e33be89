package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ladlehq/ladle/internal/model"
)

// Money formats a dollar amount for display. Values are kept unrounded until
// this point.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Quantity formats a quantity, trimming insignificant trailing zeros.
func Quantity(value float64) string {
	s := fmt.Sprintf("%.3f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// RenderBreakdown writes a full cost breakdown for a recipe: ingredient
// lines, energy sources, and the aggregate totals.
func RenderBreakdown(w io.Writer, recipe *model.Recipe, breakdown model.CostBreakdown) {
	fmt.Fprintln(w, FormatTitle(recipe.Name))

	if len(breakdown.Ingredients) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Ingredients"))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			HeaderStyle.Render("Name"),
			HeaderStyle.Render("Used"),
			HeaderStyle.Render("In package units"),
			HeaderStyle.Render("Cost"))
		for _, line := range breakdown.Ingredients {
			note := ""
			if line.Note != "" {
				note = " " + WarningStyle.Render("("+line.Note+")")
			}
			fmt.Fprintf(tw, "%s\t%s %s\t%s %s\t%s%s\n",
				line.Name,
				Quantity(line.Quantity), line.Unit,
				Quantity(line.ConvertedQuantity), line.ConvertedUnit,
				Money(line.Cost), note)
		}
		tw.Flush()
		fmt.Fprintf(w, "%s %s\n\n", SubtleStyle.Render("Ingredient total:"), Money(breakdown.IngredientTotal))
	}

	if len(breakdown.Energy) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Energy"))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			HeaderStyle.Render("Source"),
			HeaderStyle.Render("Consumed"),
			HeaderStyle.Render("Cost"))
		for _, source := range breakdown.Energy {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\n",
				source.Label,
				Quantity(source.ConsumedUnits), source.ConsumedUnit,
				Money(source.Cost))
		}
		tw.Flush()
		fmt.Fprintf(w, "%s %s\n\n", SubtleStyle.Render("Energy total:"), Money(breakdown.EnergyTotal))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Labor\t%s\n", Money(breakdown.LaborCost))
	fmt.Fprintf(tw, "Packaging\t%s\n", Money(breakdown.PackagingTotal))
	fmt.Fprintf(tw, "%s\t%s\n", BoldStyle.Render("Grand total"), BoldStyle.Render(Money(breakdown.GrandTotal)))
	fmt.Fprintf(tw, "Without labor\t%s\n", Money(breakdown.GrandTotalWithoutLabor))
	tw.Flush()

	if recipe.YieldQuantity > 0 {
		unit := recipe.YieldUnit
		if unit == "" {
			unit = "unit"
		}
		fmt.Fprintf(w, "\n%s %s per %s (%s without labor)\n",
			SuccessStyle.Render(Money(breakdown.CostPerUnit)),
			SubtleStyle.Render(fmt.Sprintf("× %s %s", Quantity(recipe.YieldQuantity), unit)),
			unit,
			Money(breakdown.CostPerUnitWithoutLabor))
	}
}

// RenderRecipeList writes the catalog listing with persisted cost snapshots.
func RenderRecipeList(w io.Writer, recipes []model.Recipe) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Name"),
		HeaderStyle.Render("Yield"),
		HeaderStyle.Render("Total"),
		HeaderStyle.Render("Per unit"))
	for _, recipe := range recipes {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n",
			recipe.Name,
			Quantity(recipe.YieldQuantity), recipe.YieldUnit,
			Money(recipe.TotalCost),
			Money(recipe.CostPerUnit))
	}
	tw.Flush()
}
