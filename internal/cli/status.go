package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/recommend"
	"github.com/mohamedgewely/showroom-hub/internal/theme"
)

// NewStatusCmd creates the 'status' command showing the current session.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current persona session and theme",
		Long: `Display the restored persona selection, the values currently in the
theme registry, and the recommendations for the active persona.`,
		Example: `  showroom-hub status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}

	return cmd
}

// runStatus displays the restored session state.
func runStatus() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	state := a.manager.State()

	if state.Descriptor == nil {
		fmt.Println("No persona selected.")
		fmt.Println("Run 'showroom-hub personas' to see the archetypes.")
		return nil
	}

	d := state.Descriptor
	fmt.Printf("Active persona: %s (%s)\n\n", personaStyle(d).Render(d.Title), d.ID)

	registry := a.manager.Registry()
	fmt.Println("Theme registry:")
	fmt.Printf("  marker:      %s\n", registry.Marker())
	fmt.Printf("  primary:     %s (rgb %s)\n", registry.Get(theme.KeyPrimary), registry.Get(theme.KeyPrimaryRGB))
	fmt.Printf("  secondary:   %s\n", registry.Get(theme.KeySecondary))
	fmt.Printf("  accent:      %s\n", registry.Get(theme.KeyAccent))
	if font := registry.Get(theme.KeyFont); font != "" {
		fmt.Printf("  font:        %s\n", font)
	}
	if cursor := registry.Get(theme.KeyCursor); cursor != "" {
		fmt.Printf("  cursor:      %s\n", cursor)
	}
	fmt.Println()

	result := recommend.Recommend(a.vehicles, d)
	printRecommendations(d, &result)

	return nil
}
