/*
Package persona defines the audience archetypes that drive showroom
personalization.

The persona catalog is a fixed, closed set: six archetypes plus "none".
Each descriptor carries the vehicle/feature affinities consumed by the
recommendation engine and the visual theme consumed by presentation code.
Descriptors are immutable; Resolve returns copies of nothing mutable beyond
slices the caller must not modify.
*/
package persona

// ID identifies a persona archetype.
type ID string

// The closed set of persona identifiers. IDNone means no selection.
const (
	IDNone              ID = ""
	IDFamilyFirst       ID = "family-first"
	IDTechEnthusiast    ID = "tech-enthusiast"
	IDEcoWarrior        ID = "eco-warrior"
	IDUrbanExplorer     ID = "urban-explorer"
	IDBusinessCommuter  ID = "business-commuter"
	IDWeekendAdventurer ID = "weekend-adventurer"
)

// ColorScheme holds the persona's theme colors as hex values.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Descriptor describes one audience archetype.
type Descriptor struct {
	// ID is the persona identifier.
	ID ID `json:"id"`

	// Title is the human-readable persona name.
	Title string `json:"title"`

	// RecommendedVehicleTypes are category tags (or model hints) this
	// persona is drawn to, in priority order.
	RecommendedVehicleTypes []string `json:"recommendedVehicleTypes"`

	// RecommendedFeatures are feature substrings this persona values.
	RecommendedFeatures []string `json:"recommendedFeatures"`

	// Colors is the persona's theme color scheme.
	Colors ColorScheme `json:"colors"`

	// Cursor is an optional cursor style hint.
	Cursor string `json:"cursor,omitempty"`

	// FontFamily is an optional font hint.
	FontFamily string `json:"fontFamily,omitempty"`

	// SoundCue is an optional reference to a short selection sound.
	SoundCue string `json:"soundCue,omitempty"`

	// BorderStyle is a border-style hint for themed surfaces.
	BorderStyle string `json:"borderStyle,omitempty"`
}

// catalog holds the fixed persona descriptors in display order.
var catalog = []Descriptor{
	{
		ID:                      IDFamilyFirst,
		Title:                   "Family First",
		RecommendedVehicleTypes: []string{"SUV", "Hybrid"},
		RecommendedFeatures:     []string{"Safety", "Seating", "Entertainment"},
		Colors: ColorScheme{
			Primary:   "#2563EB",
			Secondary: "#DBEAFE",
			Accent:    "#F59E0B",
		},
		FontFamily:  "Nunito",
		SoundCue:    "chime-warm",
		BorderStyle: "rounded",
	},
	{
		ID:                      IDTechEnthusiast,
		Title:                   "Tech Enthusiast",
		RecommendedVehicleTypes: []string{"Electric", "Hybrid"},
		RecommendedFeatures:     []string{"Display", "Wireless", "Assist", "Head-Up"},
		Colors: ColorScheme{
			Primary:   "#7C3AED",
			Secondary: "#EDE9FE",
			Accent:    "#06B6D4",
		},
		Cursor:      "crosshair",
		FontFamily:  "Space Grotesk",
		SoundCue:    "blip-digital",
		BorderStyle: "sharp",
	},
	{
		ID:                      IDEcoWarrior,
		Title:                   "Eco Warrior",
		RecommendedVehicleTypes: []string{"Hybrid", "Electric"},
		RecommendedFeatures:     []string{"Hybrid", "Electric", "EV", "Solar"},
		Colors: ColorScheme{
			Primary:   "#16A34A",
			Secondary: "#DCFCE7",
			Accent:    "#84CC16",
		},
		FontFamily:  "Quicksand",
		SoundCue:    "chime-leaf",
		BorderStyle: "rounded",
	},
	{
		ID:                      IDUrbanExplorer,
		Title:                   "Urban Explorer",
		RecommendedVehicleTypes: []string{"Sedan", "Hybrid", "Corolla"},
		RecommendedFeatures:     []string{"Smart Entry", "Park", "Compact"},
		Colors: ColorScheme{
			Primary:   "#EA580C",
			Secondary: "#FFEDD5",
			Accent:    "#0EA5E9",
		},
		SoundCue:    "blip-street",
		BorderStyle: "rounded",
	},
	{
		ID:                      IDBusinessCommuter,
		Title:                   "Business Commuter",
		RecommendedVehicleTypes: []string{"Sedan", "Crown", "Camry"},
		RecommendedFeatures:     []string{"Audio", "Charging", "Suspension"},
		Colors: ColorScheme{
			Primary:   "#1E293B",
			Secondary: "#E2E8F0",
			Accent:    "#B45309",
		},
		FontFamily:  "IBM Plex Sans",
		SoundCue:    "chime-soft",
		BorderStyle: "sharp",
	},
	{
		ID:                      IDWeekendAdventurer,
		Title:                   "Weekend Adventurer",
		RecommendedVehicleTypes: []string{"SUV", "Commercial", "Land Cruiser"},
		RecommendedFeatures:     []string{"Terrain", "4WD", "AWD", "Payload"},
		Colors: ColorScheme{
			Primary:   "#B91C1C",
			Secondary: "#FEE2E2",
			Accent:    "#D97706",
		},
		Cursor:      "grab",
		FontFamily:  "Rubik",
		SoundCue:    "chime-trail",
		BorderStyle: "rugged",
	},
}

// Resolve returns the descriptor for the given identifier.
// Unknown or empty identifiers resolve to (nil, false).
func Resolve(id ID) (*Descriptor, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// IsValid reports whether the identifier names a known persona.
func IsValid(id ID) bool {
	_, ok := Resolve(id)
	return ok
}

// All returns every persona descriptor in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}
