package model

// IngredientCost is the costed form of one ingredient line. ConvertedQuantity
// is the usage quantity expressed in the package unit; when the conversion
// could not be resolved it equals the original quantity and Note carries the
// reason.
type IngredientCost struct {
	Name              string
	Unit              string
	ConvertedUnit     string
	Note              string
	Quantity          float64
	ConvertedQuantity float64
	Cost              float64
}

// EnergyCost is the cost of one energy source. ConsumedUnit is "therms" for
// gas appliances and "kWh" for electric ones.
type EnergyCost struct {
	Label         string
	ConsumedUnit  string
	ConsumedUnits float64
	Cost          float64
}

// CostBreakdown is the full output of the cost engine: per-line detail plus
// aggregate totals. All values are unrounded; rounding is a display concern.
type CostBreakdown struct {
	Ingredients []IngredientCost
	Energy      []EnergyCost

	IngredientTotal float64
	EnergyTotal     float64
	LaborCost       float64
	PackagingTotal  float64

	GrandTotal              float64
	GrandTotalWithoutLabor  float64
	CostPerUnit             float64
	CostPerUnitWithoutLabor float64
}
