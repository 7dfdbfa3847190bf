/*
Package theme implements the style registry driven by the active persona.

The registry holds the named style values and marker class for the active
persona as an owned object: the session manager writes it, presentation
code reads immutable snapshots. At most one persona marker is active at a
time.
*/
package theme

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mohamedgewely/showroom-hub/internal/persona"
)

// Named registry keys. Values are empty strings when no persona is active.
const (
	KeyPrimary    = "color-primary"
	KeySecondary  = "color-secondary"
	KeyAccent     = "color-accent"
	KeyPrimaryRGB = "color-primary-rgb"
	KeyCursor     = "cursor"
	KeyFont       = "font-family"
	KeyBorder     = "border-style"
)

// markerPrefix namespaces persona marker classes ("persona-eco-warrior").
const markerPrefix = "persona-"

// Registry is a mutex-guarded store of named style values plus a single
// mutually-exclusive persona marker.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
	marker string
}

// NewRegistry creates a registry in its neutral default state.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]string)}
}

// Apply writes the descriptor's theme into the registry, replacing any
// previously active persona's values and marker.
func (r *Registry) Apply(d *persona.Descriptor) {
	if d == nil {
		r.Reset()
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values = map[string]string{
		KeyPrimary:    d.Colors.Primary,
		KeySecondary:  d.Colors.Secondary,
		KeyAccent:     d.Colors.Accent,
		KeyPrimaryRGB: hexToRGBTriplet(d.Colors.Primary),
		KeyCursor:     d.Cursor,
		KeyFont:       d.FontFamily,
		KeyBorder:     d.BorderStyle,
	}
	r.marker = markerPrefix + string(d.ID)
}

// Reset restores the neutral default state: empty values, no marker.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values = make(map[string]string)
	r.marker = ""
}

// Get returns the value for a named key, or "" if unset.
func (r *Registry) Get(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key]
}

// Marker returns the active persona marker class, or "" if none.
func (r *Registry) Marker() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.marker
}

// Snapshot returns a copy of all current values. Callers may mutate the
// returned map freely.
func (r *Registry) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// hexToRGBTriplet converts "#16A34A" to "22, 163, 74".
// Malformed input yields "" rather than an error.
func hexToRGBTriplet(hex string) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return ""
	}

	r, err1 := strconv.ParseUint(h[0:2], 16, 8)
	g, err2 := strconv.ParseUint(h[2:4], 16, 8)
	b, err3 := strconv.ParseUint(h[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}

	return fmt.Sprintf("%d, %d, %d", r, g, b)
}
