package model

import "time"

// PackagingOption is a named packaging choice with a per-yield-unit cost.
type PackagingOption struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Settings is the single process-wide configuration record: default rates,
// burner ratings, and efficiencies per heating technology. Exactly one row
// exists per database; it is created with defaults on first read and mutated
// only through explicit updates, never by the cost engine.
type Settings struct {
	UpdatedAt        time.Time
	DefaultStoveType StoveType
	PackagingOptions []PackagingOption

	LaborRate    float64 // $/hr
	GasRate      float64 // $/therm
	ElectricRate float64 // $/kWh

	GasBurnerBTU        float64
	GasBurnerEfficiency float64

	ElectricBurnerWattage    float64
	ElectricBurnerEfficiency float64

	InductionBurnerWattage    float64
	InductionBurnerEfficiency float64
}

// DefaultSettings returns the built-in settings used to seed a fresh
// database. Burner ratings and efficiencies are typical residential values.
func DefaultSettings() Settings {
	return Settings{
		LaborRate:        15.0,
		GasRate:          1.5,
		ElectricRate:     0.15,
		DefaultStoveType: StoveTypeGas,
		PackagingOptions: []PackagingOption{
			{Name: "none", Cost: 0},
			{Name: "bag", Cost: 0.25},
			{Name: "box", Cost: 0.75},
		},
		GasBurnerBTU:              9000,
		GasBurnerEfficiency:       0.40,
		ElectricBurnerWattage:     2100,
		ElectricBurnerEfficiency:  0.74,
		InductionBurnerWattage:    1800,
		InductionBurnerEfficiency: 0.90,
	}
}

// BurnerRating returns the default burner rating for the given stove type:
// BTU/hr for gas, watts for electric and induction.
func (s Settings) BurnerRating(stove StoveType) float64 {
	switch stove {
	case StoveTypeGas:
		return s.GasBurnerBTU
	case StoveTypeElectric:
		return s.ElectricBurnerWattage
	case StoveTypeInduction:
		return s.InductionBurnerWattage
	}
	return 0
}

// BurnerEfficiency returns the heat-transfer efficiency for the given stove
// type.
func (s Settings) BurnerEfficiency(stove StoveType) float64 {
	switch stove {
	case StoveTypeGas:
		return s.GasBurnerEfficiency
	case StoveTypeElectric:
		return s.ElectricBurnerEfficiency
	case StoveTypeInduction:
		return s.InductionBurnerEfficiency
	}
	return 0
}
