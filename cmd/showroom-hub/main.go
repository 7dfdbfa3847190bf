/*
Package main is the entry point for the showroom-hub CLI.

showroom-hub is a persona-driven car showroom: visitors pick a persona
archetype and the hub themes the session, persists the choice, and ranks
the vehicle catalog into a best match plus alternatives.

Usage:
  showroom-hub [command]

Available Commands:
  personas    List the persona archetypes
  select      Select a persona and show its recommendations
  reset       Clear the persona selection
  status      Show the current persona session and theme
  recommend   Preview recommendations for a persona
  vehicles    List the vehicle catalog
  search      Search the vehicle catalog
  lead        Capture and list sales leads
  history     Show recorded persona selections
  help        Help about any command

Examples:
  # Pick a persona and see what it recommends
  showroom-hub select eco-warrior

  # Inspect the restored session
  showroom-hub status

  # Search the catalog within a category
  showroom-hub search moonroof --category SUV
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/cli"
	"github.com/mohamedgewely/showroom-hub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "showroom-hub",
		Short: "Persona-driven car showroom recommendation engine",
		Long: `showroom-hub turns a vehicle catalog into a persona-driven showroom.

A visitor selects one of six persona archetypes (family-first, tech-enthusiast,
eco-warrior, urban-explorer, business-commuter, weekend-adventurer). The hub
then:
  • scores every vehicle against the persona's category, name and feature
    affinities and picks a best match plus up to three alternatives
  • applies the persona's color scheme to the theme registry
  • persists the selection so the next session restores it
  • records the selection for later analysis

Selections settle after a short transition delay; a newer selection made
mid-transition supersedes the pending one.`,
		Version: version.GetVersion(),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewPersonasCmd())
	rootCmd.AddCommand(cli.NewSelectCmd())
	rootCmd.AddCommand(cli.NewResetCmd())
	rootCmd.AddCommand(cli.NewStatusCmd())
	rootCmd.AddCommand(cli.NewRecommendCmd())
	rootCmd.AddCommand(cli.NewVehiclesCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewLeadCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
