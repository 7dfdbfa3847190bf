/*
Package session implements the showroom session state manager.

The manager owns the only mutable state in the system: which persona is
selected, the resolved descriptor, and whether a transition is in flight.
Selecting a persona runs as a single deferred continuation (modeling the
showroom's cross-fade window) guarded by a monotonic transition token: a
newer selection supersedes a stale continuation before it can commit.
Selections arriving mid-transition are serialized through a single
pending-request slot — last writer wins, processed when the active
transition settles.

Side effects (persistence, theme registry, sound cue, analytics, listener
broadcast) are best-effort and independently failable; every failure
degrades to "no personalization" rather than surfacing an error.
*/
package session

import (
	"log"
	"sync"
	"time"

	"github.com/mohamedgewely/showroom-hub/internal/audio"
	"github.com/mohamedgewely/showroom-hub/internal/catalog"
	"github.com/mohamedgewely/showroom-hub/internal/persona"
	"github.com/mohamedgewely/showroom-hub/internal/recommend"
	"github.com/mohamedgewely/showroom-hub/internal/storage"
	"github.com/mohamedgewely/showroom-hub/internal/theme"
	"github.com/mohamedgewely/showroom-hub/internal/track"
)

// DefaultTransitionDelay models the cross-fade window between a selection
// and its side effects.
const DefaultTransitionDelay = 400 * time.Millisecond

// Snapshot is an immutable view of the current session state.
type Snapshot struct {
	// SelectedID is the selected persona identifier, IDNone if none.
	SelectedID persona.ID

	// Descriptor is the resolved persona descriptor, nil iff SelectedID
	// is IDNone.
	Descriptor *persona.Descriptor

	// IsTransitioning is true from the start of a transition until its
	// side effects have been fully applied.
	IsTransitioning bool
}

// Update is the payload broadcast to subscribers when a selection settles.
type Update struct {
	// Persona is the now-active descriptor, nil after a reset.
	Persona *persona.Descriptor

	// Vehicles is the recommendation result for the active persona,
	// nil after a reset.
	Vehicles *recommend.Result
}

// Listener receives selection updates. Invocations are fire-and-forget:
// the manager never waits on or inspects a listener's behavior.
type Listener func(Update)

// Options configures a Manager. Zero-value fields get safe defaults.
type Options struct {
	// Store persists the selected persona identifier. Nil disables
	// persistence.
	Store storage.SessionStore

	// Registry receives theme side effects. Nil creates an owned registry.
	Registry *theme.Registry

	// Player plays persona sound cues. Nil disables cues.
	Player audio.Player

	// Tracker records selection analytics. Nil disables tracking.
	Tracker *track.Tracker

	// TransitionDelay overrides DefaultTransitionDelay when positive.
	TransitionDelay time.Duration
}

// Manager is the session state manager.
type Manager struct {
	vehicles []catalog.Vehicle
	store    storage.SessionStore
	registry *theme.Registry
	player   audio.Player
	tracker  *track.Tracker
	delay    time.Duration

	mu            sync.Mutex
	selectedID    persona.ID
	descriptor    *persona.Descriptor
	transitioning bool
	token         uint64
	pending       *persona.ID
	timer         *time.Timer

	listeners      map[int]Listener
	nextListenerID int
}

// NewManager creates a session manager over the given vehicle catalog.
//
// If a store is configured, a previously persisted persona identifier is
// restored and its theme applied. An unrecognized or corrupted stored
// value, or a failing read, is treated as "no selection" and never fails
// construction. Restoration is silent: no notification, sound or
// re-persist fires for the restored state.
func NewManager(vehicles []catalog.Vehicle, opts Options) *Manager {
	m := &Manager{
		vehicles:  vehicles,
		store:     opts.Store,
		registry:  opts.Registry,
		player:    opts.Player,
		tracker:   opts.Tracker,
		delay:     opts.TransitionDelay,
		listeners: make(map[int]Listener),
	}
	if m.registry == nil {
		m.registry = theme.NewRegistry()
	}
	if m.delay <= 0 {
		m.delay = DefaultTransitionDelay
	}

	m.restore()

	return m
}

// restore loads the persisted persona selection, if any.
func (m *Manager) restore() {
	if m.store == nil {
		return
	}

	value, err := m.store.SessionValue(storage.SessionKeySelectedPersona)
	if err != nil {
		log.Printf("Warning: failed to read persisted persona: %v", err)
		return
	}
	if value == "" {
		return
	}

	desc, ok := persona.Resolve(persona.ID(value))
	if !ok {
		log.Printf("Warning: ignoring unknown persisted persona: %q", value)
		return
	}

	m.selectedID = desc.ID
	m.descriptor = desc
	m.registry.Apply(desc)
}

// State returns an immutable snapshot of the current session state.
func (m *Manager) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		SelectedID:      m.selectedID,
		Descriptor:      m.descriptor,
		IsTransitioning: m.transitioning,
	}
}

// Registry returns the theme registry the manager writes.
func (m *Manager) Registry() *theme.Registry {
	return m.registry
}

// Subscribe registers a listener for selection updates and returns an
// unsubscribe function.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextListenerID
	m.nextListenerID++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Select requests a persona selection.
//
// An unknown identifier is treated as "no selection". Selecting the
// already-active persona is a no-op: no transition starts and no side
// effects re-fire. A selection arriving mid-transition lands in the
// pending slot (last writer wins) and starts once the active transition
// settles.
func (m *Manager) Select(id persona.ID) {
	target := id
	if target != persona.IDNone && !persona.IsValid(target) {
		log.Printf("Warning: ignoring unknown persona: %q", id)
		target = persona.IDNone
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transitioning {
		t := target
		m.pending = &t
		return
	}

	if target == m.selectedID {
		return
	}

	m.beginTransitionLocked(target)
}

// Reset clears the persona selection, reverting theme and persistence to
// their defaults. Equivalent to Select with no persona.
func (m *Manager) Reset() {
	m.Select(persona.IDNone)
}

// Stop cancels any in-flight transition. Pending side effects do not
// apply after Stop returns.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.pending = nil
	m.transitioning = false
}

// beginTransitionLocked starts the deferred continuation for a target
// persona. Caller must hold m.mu.
func (m *Manager) beginTransitionLocked(target persona.ID) {
	m.transitioning = true
	m.token++
	tok := m.token

	m.timer = time.AfterFunc(m.delay, func() {
		m.complete(tok, target)
	})
}

// complete commits a transition if it has not been superseded, applies
// side effects, settles (or chains the pending selection), and notifies
// subscribers.
func (m *Manager) complete(tok uint64, target persona.ID) {
	m.mu.Lock()
	if tok != m.token {
		// Superseded by a newer selection or Stop.
		m.mu.Unlock()
		return
	}

	var desc *persona.Descriptor
	if target != persona.IDNone {
		desc, _ = persona.Resolve(target)
	}
	m.selectedID = target
	m.descriptor = desc
	m.mu.Unlock()

	m.applySideEffects(desc)

	update := Update{Persona: desc}
	if desc != nil {
		result := recommend.Recommend(m.vehicles, desc)
		update.Vehicles = &result
	}

	m.trackSelection(desc, update.Vehicles)

	// Settle, or chain the pending selection.
	m.mu.Lock()
	m.timer = nil
	if m.pending != nil {
		next := *m.pending
		m.pending = nil
		if next != m.selectedID {
			m.beginTransitionLocked(next)
		} else {
			m.transitioning = false
		}
	} else {
		m.transitioning = false
	}

	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(update)
	}
}

// applySideEffects applies persistence, theme and sound for the committed
// state. Each effect fails independently; nothing propagates.
func (m *Manager) applySideEffects(desc *persona.Descriptor) {
	if desc != nil {
		if m.store != nil {
			if err := m.store.SaveSessionValue(storage.SessionKeySelectedPersona, string(desc.ID)); err != nil {
				log.Printf("Warning: failed to persist persona selection: %v", err)
			}
		}

		m.registry.Apply(desc)

		if m.player != nil && desc.SoundCue != "" {
			if err := m.player.Play(desc.SoundCue); err != nil {
				log.Printf("Warning: failed to play sound cue: %v", err)
			}
		}
		return
	}

	if m.store != nil {
		if err := m.store.ClearSessionValue(storage.SessionKeySelectedPersona); err != nil {
			log.Printf("Warning: failed to clear persisted persona: %v", err)
		}
	}
	m.registry.Reset()
}

// trackSelection records the settled selection for analytics.
func (m *Manager) trackSelection(desc *persona.Descriptor, result *recommend.Result) {
	if m.tracker == nil {
		return
	}

	personaID := ""
	bestMatch := ""
	if desc != nil {
		personaID = string(desc.ID)
	}
	if result != nil && result.BestMatch != nil {
		bestMatch = result.BestMatch.Name
	}

	m.tracker.Track(track.NewSelectionEvent(personaID, bestMatch))
}
