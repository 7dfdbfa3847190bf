package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command showing selection events.
func NewHistoryCmd() *cobra.Command {
	var since time.Duration

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded persona selections",
		Long: `Display the persona selection history recorded by the tracker,
newest first.`,
		Example: `  showroom-hub history
  showroom-hub history --since 24h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(since)
		},
	}

	cmd.Flags().DurationVar(&since, "since", 0, "Only show events newer than this (e.g. 24h)")

	return cmd
}

// runHistory displays recorded selection events.
func runHistory(since time.Duration) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		fmt.Println("Storage is disabled; no history recorded.")
		return nil
	}

	var cutoff time.Time
	if since > 0 {
		cutoff = time.Now().Add(-since)
	}

	events, err := a.store.GetSelectionHistory(cutoff)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No selections recorded yet.")
		return nil
	}

	fmt.Printf("Selection history (%d):\n\n", len(events))
	for _, e := range events {
		persona := e.PersonaID
		if persona == "" {
			persona = "(reset)"
		}
		fmt.Printf("  %s  %-22s", e.Timestamp.Format("2006-01-02 15:04:05"), persona)
		if e.BestMatch != "" {
			fmt.Printf("  → %s", e.BestMatch)
		}
		fmt.Println()
	}

	return nil
}
