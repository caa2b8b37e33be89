// Package recipefile loads recipe definitions from YAML files.
package recipefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ladlehq/ladle/internal/model"
)

// File is the YAML schema of a recipe definition.
type File struct {
	Name          string       `yaml:"name"`
	Yield         Yield        `yaml:"yield"`
	Oven          Oven         `yaml:"oven"`
	MixerTime     float64      `yaml:"mixer_time"`
	Labor         Labor        `yaml:"labor"`
	Rates         Rates        `yaml:"rates"`
	PackagingCost float64      `yaml:"packaging_cost"`
	Ingredients   []Ingredient `yaml:"ingredients"`
	Stovetop      []Stovetop   `yaml:"stovetop"`
}

// Yield is the countable output of one batch.
type Yield struct {
	Unit     string  `yaml:"unit"`
	Quantity float64 `yaml:"quantity"`
}

// Oven holds the oven times in minutes.
type Oven struct {
	PreheatTime float64 `yaml:"preheat_time"`
	BakeTime    float64 `yaml:"bake_time"`
}

// Labor holds hands-on time in minutes and an optional hourly rate.
type Labor struct {
	Time float64 `yaml:"time"`
	Rate float64 `yaml:"rate"`
}

// Rates are optional per-recipe energy rates; zero falls back to settings.
type Rates struct {
	Gas      float64 `yaml:"gas"`
	Electric float64 `yaml:"electric"`
}

// Ingredient is one ingredient line. Package fields may be omitted and
// pre-filled from the ingredient database by name.
type Ingredient struct {
	Name         string  `yaml:"name"`
	Unit         string  `yaml:"unit"`
	PackageUnit  string  `yaml:"package_unit"`
	Quantity     float64 `yaml:"quantity"`
	PackageSize  float64 `yaml:"package_size"`
	PackagePrice float64 `yaml:"package_price"`
}

// Stovetop is one stovetop process. StoveType may be omitted, in which case
// the settings default stove type applies at costing time.
type Stovetop struct {
	Name          string  `yaml:"name"`
	StoveType     string  `yaml:"stove_type"`
	BurnerBTU     float64 `yaml:"burner_btu"`
	BurnerWattage float64 `yaml:"burner_wattage"`
	PowerLevel    float64 `yaml:"power_level"`
	Duration      float64 `yaml:"duration"`
}

// Load reads and parses a recipe definition file.
func Load(path string) (*model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into a recipe. Unknown stove types are rejected here so
// the engine never sees one.
func Parse(data []byte) (*model.Recipe, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse recipe file: %w", err)
	}

	recipe := &model.Recipe{
		Name:          file.Name,
		PreheatTime:   file.Oven.PreheatTime,
		BakeTime:      file.Oven.BakeTime,
		MixerTime:     file.MixerTime,
		LaborTime:     file.Labor.Time,
		LaborRate:     file.Labor.Rate,
		GasRate:       file.Rates.Gas,
		ElectricRate:  file.Rates.Electric,
		PackagingCost: file.PackagingCost,
		YieldQuantity: file.Yield.Quantity,
		YieldUnit:     file.Yield.Unit,
	}

	for _, ingredient := range file.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.IngredientLine{
			Name:         ingredient.Name,
			Quantity:     ingredient.Quantity,
			UsageUnit:    ingredient.Unit,
			PackageSize:  ingredient.PackageSize,
			PackageUnit:  ingredient.PackageUnit,
			PackagePrice: ingredient.PackagePrice,
		})
	}

	for i, process := range file.Stovetop {
		stoveType := model.StoveType(process.StoveType)
		if process.StoveType != "" && !stoveType.Valid() {
			return nil, fmt.Errorf("stovetop process %d: unknown stove type %q", i, process.StoveType)
		}
		recipe.Stovetop = append(recipe.Stovetop, model.StoveProcess{
			Name:          process.Name,
			StoveType:     stoveType,
			BurnerBTU:     process.BurnerBTU,
			BurnerWattage: process.BurnerWattage,
			PowerLevel:    process.PowerLevel,
			Duration:      process.Duration,
		})
	}

	return recipe, nil
}
