package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ladlehq/ladle/internal/cli"
	"github.com/ladlehq/ladle/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage default rates and equipment settings",
		Long: `Settings hold the default labor and energy rates, the default stove
type, and the burner rating and efficiency per heating technology. They are
created with built-in defaults on first use.`,
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "labor-rate\t%s/hr\n", cli.Money(settings.LaborRate))
			fmt.Fprintf(w, "gas-rate\t%s/therm\n", cli.Money(settings.GasRate))
			fmt.Fprintf(w, "electric-rate\t$%.4f/kWh\n", settings.ElectricRate)
			fmt.Fprintf(w, "default-stove\t%s\n", settings.DefaultStoveType)
			fmt.Fprintf(w, "gas-burner\t%s BTU/hr at %.0f%% efficiency\n",
				cli.Quantity(settings.GasBurnerBTU), settings.GasBurnerEfficiency*100)
			fmt.Fprintf(w, "electric-burner\t%s W at %.0f%% efficiency\n",
				cli.Quantity(settings.ElectricBurnerWattage), settings.ElectricBurnerEfficiency*100)
			fmt.Fprintf(w, "induction-burner\t%s W at %.0f%% efficiency\n",
				cli.Quantity(settings.InductionBurnerWattage), settings.InductionBurnerEfficiency*100)
			for _, option := range settings.PackagingOptions {
				fmt.Fprintf(w, "packaging\t%s (%s/unit)\n", option.Name, cli.Money(option.Cost))
			}

			return nil
		},
	}
}

// settingFields maps a settable key to the field it updates. Efficiencies are
// fractions in (0, 1].
var settingFields = map[string]func(*model.Settings, float64) error{
	"labor-rate":    func(s *model.Settings, v float64) error { s.LaborRate = v; return nil },
	"gas-rate":      func(s *model.Settings, v float64) error { s.GasRate = v; return nil },
	"electric-rate": func(s *model.Settings, v float64) error { s.ElectricRate = v; return nil },
	"gas-burner-btu": func(s *model.Settings, v float64) error {
		s.GasBurnerBTU = v
		return nil
	},
	"gas-burner-efficiency": func(s *model.Settings, v float64) error {
		if v <= 0 || v > 1 {
			return fmt.Errorf("efficiency must be in (0, 1]")
		}
		s.GasBurnerEfficiency = v
		return nil
	},
	"electric-burner-wattage": func(s *model.Settings, v float64) error {
		s.ElectricBurnerWattage = v
		return nil
	},
	"electric-burner-efficiency": func(s *model.Settings, v float64) error {
		if v <= 0 || v > 1 {
			return fmt.Errorf("efficiency must be in (0, 1]")
		}
		s.ElectricBurnerEfficiency = v
		return nil
	},
	"induction-burner-wattage": func(s *model.Settings, v float64) error {
		s.InductionBurnerWattage = v
		return nil
	},
	"induction-burner-efficiency": func(s *model.Settings, v float64) error {
		if v <= 0 || v > 1 {
			return fmt.Errorf("efficiency must be in (0, 1]")
		}
		s.InductionBurnerEfficiency = v
		return nil
	},
}

func setSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one setting",
		Long: `Update a single setting. Keys: labor-rate, gas-rate, electric-rate,
default-stove, gas-burner-btu, gas-burner-efficiency, electric-burner-wattage,
electric-burner-efficiency, induction-burner-wattage, induction-burner-efficiency.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, value := args[0], args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			if key == "default-stove" {
				stove := model.StoveType(value)
				if !stove.Valid() {
					return fmt.Errorf("invalid stove type %q (gas, electric, induction)", value)
				}
				settings.DefaultStoveType = stove
			} else {
				setter, ok := settingFields[key]
				if !ok {
					return fmt.Errorf("unknown setting %q", key)
				}
				number, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid value for %s: %w", key, err)
				}
				if err := setter(settings, number); err != nil {
					return err
				}
			}

			if err := store.UpdateSettings(ctx, settings); err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s", key)))
			return nil
		},
	}
}
