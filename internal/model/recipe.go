package model

import "time"

// StoveType identifies the heating technology of a stovetop burner.
type StoveType string

const (
	// StoveTypeGas burners are rated in BTU/hr and billed in therms.
	StoveTypeGas StoveType = "gas"
	// StoveTypeElectric burners are rated in watts and billed in kWh.
	StoveTypeElectric StoveType = "electric"
	// StoveTypeInduction burners are rated in watts and billed in kWh.
	StoveTypeInduction StoveType = "induction"
)

// Valid reports whether the stove type is one of the supported technologies.
func (s StoveType) Valid() bool {
	switch s {
	case StoveTypeGas, StoveTypeElectric, StoveTypeInduction:
		return true
	}
	return false
}

// IngredientLine is a single ingredient usage within a recipe, together with
// the package it is purchased in. UsageUnit and PackageUnit may differ in
// kind (weight vs volume); the conversion service bridges them.
type IngredientLine struct {
	Name         string
	UsageUnit    string
	PackageUnit  string
	Quantity     float64
	PackageSize  float64
	PackagePrice float64
}

// StoveProcess is one stovetop step of a recipe. BurnerBTU and BurnerWattage
// are optional per-process overrides; zero means "use the settings default
// for this stove type". PowerLevel is a 0-100 percentage of rated output.
type StoveProcess struct {
	Name          string
	StoveType     StoveType
	BurnerBTU     float64
	BurnerWattage float64
	PowerLevel    float64
	Duration      float64 // minutes
}

// Recipe aggregates everything needed to cost one batch. Time fields are in
// minutes. Rate fields of zero fall back to the settings defaults. The three
// cost fields are a snapshot computed at save time, not recomputed on load.
type Recipe struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	YieldUnit   string
	Ingredients []IngredientLine
	Stovetop    []StoveProcess

	PreheatTime float64
	BakeTime    float64
	MixerTime   float64
	LaborTime   float64

	LaborRate    float64
	GasRate      float64 // $/therm
	ElectricRate float64 // $/kWh

	PackagingCost float64 // per yield unit
	YieldQuantity float64

	TotalCost               float64
	CostPerUnit             float64
	CostPerUnitWithoutLabor float64

	ID int64
}
