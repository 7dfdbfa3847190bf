/*
Package catalog provides the vehicle catalog: an ordered, immutable list of
sellable models loaded once at startup.

The default catalog is embedded in the binary. A different catalog can be
loaded from a JSON file via configuration; the file uses the same schema:

	[
	  {
	    "id": "toyota-highlander",
	    "name": "Toyota Highlander",
	    "category": "SUV",
	    "price": 175000,
	    "features": ["Seating for 8", "Toyota Safety Sense 3.0"],
	    "image": "/images/highlander.webp"
	  }
	]

Catalog order is significant: recommendation ties are broken by position.
*/
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed data/vehicles.json
var defaultCatalogJSON []byte

// Vehicle represents one sellable model.
type Vehicle struct {
	// ID is a stable identifier. Derived from Name if absent in the data.
	ID string `json:"id,omitempty"`

	// Name is the display name, unique within a catalog.
	Name string `json:"name"`

	// Category is the vehicle's classification tag (open set).
	Category Category `json:"category"`

	// Price is a non-negative, currency-agnostic integer.
	Price int `json:"price"`

	// Features are display-ordered feature strings.
	Features []string `json:"features,omitempty"`

	// Image is a URI reference to the vehicle's hero image.
	Image string `json:"image,omitempty"`
}

// Default returns the embedded vehicle catalog.
func Default() ([]Vehicle, error) {
	return parse(defaultCatalogJSON)
}

// LoadFrom reads a vehicle catalog from a JSON file.
func LoadFrom(path string) ([]Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parse(data)
}

// parse decodes and validates catalog JSON.
func parse(data []byte) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		if v.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("duplicate vehicle name: %s", v.Name)
		}
		seen[v.Name] = true

		if v.Price < 0 {
			return nil, fmt.Errorf("vehicle %s has negative price", v.Name)
		}
		if v.ID == "" {
			v.ID = DeriveID(v.Name)
		}
	}

	return vehicles, nil
}

// DeriveID builds a stable identifier from a display name
// ("Toyota Land Cruiser" -> "toyota-land-cruiser").
func DeriveID(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// ByName returns the vehicle with the given display name, if present.
func ByName(vehicles []Vehicle, name string) (Vehicle, bool) {
	for _, v := range vehicles {
		if v.Name == name {
			return v, true
		}
	}
	return Vehicle{}, false
}

// FilterByCategory returns vehicles whose category matches the given tag
// case-insensitively, preserving catalog order.
func FilterByCategory(vehicles []Vehicle, category string) []Vehicle {
	var out []Vehicle
	for _, v := range vehicles {
		if strings.EqualFold(string(v.Category), category) {
			out = append(out, v)
		}
	}
	return out
}
