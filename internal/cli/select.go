package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/persona"
)

// NewSelectCmd creates the 'select' command for activating a persona.
func NewSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <persona-id>",
		Short: "Select a persona and show its recommendations",
		Long: `Activate a persona archetype. The selection is persisted, the theme
registry is updated, and the recommendation engine picks a best match plus
up to three alternatives from the vehicle catalog.`,
		Example: `  showroom-hub select eco-warrior
  showroom-hub select family-first`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(persona.ID(args[0]))
		},
	}

	return cmd
}

// runSelect activates a persona and prints the resulting recommendations.
func runSelect(id persona.ID) error {
	if !persona.IsValid(id) {
		return fmt.Errorf("unknown persona %q (valid: %s)", id, strings.Join(validIDs(), ", "))
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.manager.State().SelectedID == id {
		fmt.Printf("Persona %s is already active.\n", id)
		return nil
	}

	update, err := a.selectAndWait(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", personaStyle(update.Persona).Render("Welcome, "+update.Persona.Title+"!"))
	printRecommendations(update.Persona, update.Vehicles)

	return nil
}

// validIDs lists the selectable persona identifiers.
func validIDs() []string {
	personas := persona.All()
	ids := make([]string, len(personas))
	for i, p := range personas {
		ids[i] = string(p.ID)
	}
	return ids
}

// NewResetCmd creates the 'reset' command for clearing the selection.
func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the persona selection",
		Long: `Clear the active persona. The persisted selection is removed and the
theme registry reverts to its neutral defaults.`,
		Example: `  showroom-hub reset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset()
		},
	}

	return cmd
}

// runReset clears the persona selection.
func runReset() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.manager.State().SelectedID == persona.IDNone {
		fmt.Println("No persona selected.")
		return nil
	}

	if _, err := a.selectAndWait(persona.IDNone); err != nil {
		return err
	}

	fmt.Println("Persona selection cleared.")
	return nil
}
