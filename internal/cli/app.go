/*
Package cli implements the showroom-hub command-line interface.

Each command is built by a NewXxxCmd constructor. Commands that need the
session stack share the app wiring below: config, catalog, storage,
theme registry, tracker and session manager, torn down in reverse order.

The CLI is the showroom's presentation collaborator: it consumes the theme
registry and recommendation broadcasts as plain data and renders them with
lipgloss. It never feeds anything back into the scoring engine.
*/
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedgewely/showroom-hub/internal/audio"
	"github.com/mohamedgewely/showroom-hub/internal/catalog"
	"github.com/mohamedgewely/showroom-hub/internal/config"
	"github.com/mohamedgewely/showroom-hub/internal/persona"
	"github.com/mohamedgewely/showroom-hub/internal/recommend"
	"github.com/mohamedgewely/showroom-hub/internal/session"
	"github.com/mohamedgewely/showroom-hub/internal/storage"
	"github.com/mohamedgewely/showroom-hub/internal/theme"
	"github.com/mohamedgewely/showroom-hub/internal/track"
)

// updateTimeout bounds how long a command waits for a transition to settle.
const updateTimeout = 5 * time.Second

// app bundles the wired showroom components behind a command.
type app struct {
	cfg      *config.Config
	vehicles []catalog.Vehicle
	store    *storage.SQLiteStorage
	tracker  *track.Tracker
	manager  *session.Manager
}

// newApp loads configuration and wires the session stack.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	vehicles, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, vehicles: vehicles}

	opts := session.Options{
		Registry:        theme.NewRegistry(),
		TransitionDelay: cfg.TransitionDelay(),
	}

	if cfg.StorageEnabled {
		a.store = storage.NewStorage()
		if err := a.store.Init(); err == nil {
			a.tracker = track.NewTracker(a.store)
		}
		// Init failures degrade to no-op storage; the session still
		// persists through the disabled store without erroring.
		opts.Store = a.store
		opts.Tracker = a.tracker
	}

	if cfg.SoundEnabled {
		opts.Player = audio.NewBellPlayer(os.Stderr)
	}

	a.manager = session.NewManager(vehicles, opts)

	return a, nil
}

// close tears the app down, flushing the tracker before closing storage.
func (a *app) close() {
	a.manager.Stop()
	if a.tracker != nil {
		a.tracker.Stop()
	}
	if a.store != nil {
		a.store.Close()
	}
}

// loadCatalog loads the configured or embedded vehicle catalog.
func loadCatalog(cfg *config.Config) ([]catalog.Vehicle, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFrom(cfg.CatalogPath)
	}
	return catalog.Default()
}

// selectAndWait runs a selection and blocks until its update is broadcast.
// Callers must rule out redundant selections first: those start no
// transition and broadcast nothing.
func (a *app) selectAndWait(id persona.ID) (session.Update, error) {
	updates := make(chan session.Update, 1)
	unsubscribe := a.manager.Subscribe(func(u session.Update) {
		select {
		case updates <- u:
		default:
		}
	})
	defer unsubscribe()

	a.manager.Select(id)

	select {
	case u := <-updates:
		return u, nil
	case <-time.After(updateTimeout):
		return session.Update{}, fmt.Errorf("timed out waiting for transition")
	}
}

// personaStyle builds a lipgloss style from a persona's primary color.
func personaStyle(d *persona.Descriptor) lipgloss.Style {
	if d == nil {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Colors.Primary)).Bold(true)
}

// accentStyle builds a lipgloss style from a persona's accent color.
func accentStyle(d *persona.Descriptor) lipgloss.Style {
	if d == nil {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Colors.Accent))
}

// printRecommendations renders a recommendation result with persona theming.
func printRecommendations(d *persona.Descriptor, result *recommend.Result) {
	if result == nil || result.BestMatch == nil {
		fmt.Println("No recommendations available.")
		return
	}

	title := personaStyle(d)
	accent := accentStyle(d)

	fmt.Printf("%s %s\n", title.Render("Best match:"), result.BestMatch.Name)
	fmt.Printf("  %s  ·  %s\n", result.BestMatch.Category, formatPrice(result.BestMatch.Price))
	for _, f := range result.BestMatch.Features {
		fmt.Printf("  %s %s\n", accent.Render("•"), f)
	}

	if len(result.Secondary) > 0 {
		fmt.Printf("\n%s\n", title.Render("You may also like:"))
		for _, v := range result.Secondary {
			fmt.Printf("  %s (%s, %s)\n", v.Name, v.Category, formatPrice(v.Price))
		}
	}
}

// formatPrice renders a catalog price with thousands separators.
func formatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
