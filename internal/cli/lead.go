package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/leads"
)

// NewLeadCmd creates the 'lead' command group for lead capture.
func NewLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Capture and list sales leads",
	}

	cmd.AddCommand(newLeadAddCmd())
	cmd.AddCommand(newLeadListCmd())

	return cmd
}

// newLeadAddCmd creates the 'lead add' command.
func newLeadAddCmd() *cobra.Command {
	var name, email, phone, vehicle string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Capture a sales lead",
		Long: `Capture a prospect's contact details. The active persona, if any, is
recorded with the lead for follow-up context.`,
		Example: `  showroom-hub lead add --name "A. Prospect" --email a@example.com
  showroom-hub lead add --name "A. Prospect" --email a@example.com --vehicle "Toyota Camry"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeadAdd(name, email, phone, vehicle)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Prospect name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Prospect email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Prospect phone")
	cmd.Flags().StringVar(&vehicle, "vehicle", "", "Vehicle of interest")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

// runLeadAdd validates and persists a lead.
func runLeadAdd(name, email, phone, vehicle string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		return fmt.Errorf("storage is disabled; enable it in ~/.showroom-hub.json to capture leads")
	}

	personaID := string(a.manager.State().SelectedID)

	lead, err := leads.Capture(a.store, name, email, phone, vehicle, personaID)
	if err != nil {
		return err
	}

	fmt.Printf("Lead captured: %s <%s> (id %s)\n", lead.Name, lead.Email, lead.ID)
	return nil
}

// newLeadListCmd creates the 'lead list' command.
func newLeadListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List captured leads",
		Example: `  showroom-hub lead list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeadList()
		},
	}

	return cmd
}

// runLeadList displays captured leads, newest first.
func runLeadList() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		fmt.Println("Storage is disabled; no leads recorded.")
		return nil
	}

	all, err := a.store.ListLeads()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No leads captured yet.")
		return nil
	}

	fmt.Printf("Leads (%d):\n\n", len(all))
	for _, lead := range all {
		fmt.Printf("  %s <%s>\n", lead.Name, lead.Email)
		if lead.Phone != "" {
			fmt.Printf("    Phone:   %s\n", lead.Phone)
		}
		if lead.VehicleName != "" {
			fmt.Printf("    Vehicle: %s\n", lead.VehicleName)
		}
		if lead.PersonaID != "" {
			fmt.Printf("    Persona: %s\n", lead.PersonaID)
		}
		fmt.Printf("    When:    %s\n", lead.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
	}

	return nil
}
