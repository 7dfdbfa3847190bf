package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/persona"
	"github.com/mohamedgewely/showroom-hub/internal/recommend"
)

// NewRecommendCmd creates the 'recommend' command. Unlike 'select' it
// does not start a transition: the session, theme and persistence are
// untouched.
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [persona-id]",
		Short: "Preview recommendations for a persona",
		Long: `Score the catalog against a persona and show the best match plus up to
three alternatives. Without an argument, the active persona is used.`,
		Example: `  showroom-hub recommend
  showroom-hub recommend weekend-adventurer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := persona.IDNone
			if len(args) == 1 {
				id = persona.ID(args[0])
			}
			return runRecommend(id)
		},
	}

	return cmd
}

// runRecommend scores and prints without mutating the session.
func runRecommend(id persona.ID) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var d *persona.Descriptor
	if id == persona.IDNone {
		d = a.manager.State().Descriptor
		if d == nil {
			return fmt.Errorf("no persona selected; pass one (valid: %s)", strings.Join(validIDs(), ", "))
		}
	} else {
		var ok bool
		d, ok = persona.Resolve(id)
		if !ok {
			return fmt.Errorf("unknown persona %q (valid: %s)", id, strings.Join(validIDs(), ", "))
		}
	}

	fmt.Printf("Recommendations for %s:\n\n", personaStyle(d).Render(d.Title))

	result := recommend.Recommend(a.vehicles, d)
	printRecommendations(d, &result)

	return nil
}
