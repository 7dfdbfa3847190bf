package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/persona"
)

// NewPersonasCmd creates the 'personas' command listing the archetypes.
func NewPersonasCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "personas",
		Aliases: []string{"p"},
		Short:   "List the showroom persona archetypes",
		Long:    `Display every persona archetype with its affinities and theme colors.`,
		Example: `  showroom-hub personas
  showroom-hub personas --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonas(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runPersonas displays the persona catalog.
func runPersonas(jsonOutput bool) error {
	personas := persona.All()

	if jsonOutput {
		data, err := json.MarshalIndent(personas, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal personas: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Persona archetypes (%d):\n\n", len(personas))

	for _, p := range personas {
		desc := p
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(desc.Colors.Primary)).
			Render("██")

		fmt.Printf("  %s %s  (%s)\n", swatch, personaStyle(&desc).Render(p.Title), p.ID)
		fmt.Printf("    Vehicle types: %s\n", strings.Join(p.RecommendedVehicleTypes, ", "))
		fmt.Printf("    Features:      %s\n", strings.Join(p.RecommendedFeatures, ", "))
		fmt.Println()
	}

	fmt.Println("Select one with 'showroom-hub select <persona-id>'.")

	return nil
}
