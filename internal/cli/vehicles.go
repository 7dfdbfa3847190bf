package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/catalog"
	"github.com/mohamedgewely/showroom-hub/internal/recommend"
)

// NewVehiclesCmd creates the 'vehicles' command listing the catalog.
func NewVehiclesCmd() *cobra.Command {
	var jsonOutput bool
	var category string
	var scored bool

	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"v"},
		Short:   "List the vehicle catalog",
		Long:    `Display the vehicle catalog, optionally filtered by category.`,
		Example: `  showroom-hub vehicles
  showroom-hub vehicles --category SUV
  showroom-hub vehicles --scored   # include scores for the active persona
  showroom-hub vehicles --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicles(jsonOutput, category, scored)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().BoolVarP(&scored, "scored", "s", false, "Show scores for the active persona")

	return cmd
}

// runVehicles displays the catalog.
func runVehicles(jsonOutput bool, category string, scored bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	vehicles := a.vehicles
	if category != "" {
		vehicles = catalog.FilterByCategory(vehicles, category)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(vehicles, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal vehicles: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(vehicles) == 0 {
		fmt.Println("No vehicles match.")
		return nil
	}

	state := a.manager.State()

	fmt.Printf("Vehicles (%d):\n\n", len(vehicles))
	for _, v := range vehicles {
		line := fmt.Sprintf("  %-24s %-15s %s", v.Name, v.Category, formatPrice(v.Price))
		if scored && state.Descriptor != nil {
			line += fmt.Sprintf("   score %d", recommend.Score(v, state.Descriptor))
		}
		fmt.Println(line)
	}

	if scored && state.Descriptor == nil {
		fmt.Println("\nNo persona selected; scores omitted.")
	}

	return nil
}
