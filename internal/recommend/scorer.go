/*
Package recommend implements the persona-to-vehicle scoring engine.

Scores are additive integers built from generic affinity rules plus a small
set of literal per-persona bonuses. The bonuses are intentionally asymmetric
(eco-warrior's hybrid bonus is double tech-enthusiast's for the same
condition, and three personas have no bonus at all); they must not be
generalized.
*/
package recommend

import (
	"sort"
	"strings"

	"github.com/mohamedgewely/showroom-hub/internal/catalog"
	"github.com/mohamedgewely/showroom-hub/internal/persona"
)

const (
	// categoryMatchScore is awarded when the vehicle's category matches a
	// recommended vehicle type.
	categoryMatchScore = 50

	// nameMatchScore is awarded when the vehicle's name contains a
	// recommended vehicle type (captures model-specific hints like
	// "Land Cruiser" in an SUV-type list).
	nameMatchScore = 30

	// featureMatchScore is awarded per vehicle feature that contains a
	// recommended feature substring.
	featureMatchScore = 10

	// familyNameBonus applies to family-first for flagship family models.
	familyNameBonus = 20

	// techElectrifiedBonus applies to tech-enthusiast for Hybrid/Electric.
	techElectrifiedBonus = 20

	// ecoElectrifiedBonus applies to eco-warrior for Hybrid/Electric.
	// Deliberately double the tech-enthusiast bonus.
	ecoElectrifiedBonus = 40

	// maxSecondary is the maximum number of secondary recommendations.
	maxSecondary = 3
)

// familyFlagships are the model names that earn the family-first bonus.
var familyFlagships = []string{"Highlander", "Fortuner", "Land Cruiser"}

// Result holds the outcome of a recommendation pass.
type Result struct {
	// BestMatch is the highest-scoring vehicle, or nil for an empty catalog.
	BestMatch *catalog.Vehicle `json:"bestMatch,omitempty"`

	// Secondary are the next-highest-scoring vehicles, at most three,
	// never containing BestMatch.
	Secondary []catalog.Vehicle `json:"secondary,omitempty"`
}

// Score calculates a vehicle's affinity score for a persona.
// It is deterministic, never negative, and has no upper bound.
func Score(v catalog.Vehicle, p *persona.Descriptor) int {
	if p == nil {
		return 0
	}

	score := 0
	category := strings.ToLower(string(v.Category))
	name := strings.ToLower(v.Name)

	// Category affinity: substring match in either direction so that
	// "GR Performance" matches a "Performance" type entry and vice versa.
	for _, t := range p.RecommendedVehicleTypes {
		typ := strings.ToLower(t)
		if strings.Contains(category, typ) || strings.Contains(typ, category) {
			score += categoryMatchScore
			break
		}
	}

	// Name affinity: a type entry appearing in the display name.
	for _, t := range p.RecommendedVehicleTypes {
		if strings.Contains(name, strings.ToLower(t)) {
			score += nameMatchScore
			break
		}
	}

	// Feature affinity: additive per matching feature.
	for _, f := range v.Features {
		feature := strings.ToLower(f)
		for _, rf := range p.RecommendedFeatures {
			if strings.Contains(feature, strings.ToLower(rf)) {
				score += featureMatchScore
				break
			}
		}
	}

	score += personaBonus(v, p.ID)

	return score
}

// personaBonus applies the literal per-persona special cases.
func personaBonus(v catalog.Vehicle, id persona.ID) int {
	switch id {
	case persona.IDFamilyFirst:
		name := strings.ToLower(v.Name)
		for _, flagship := range familyFlagships {
			if strings.Contains(name, strings.ToLower(flagship)) {
				return familyNameBonus
			}
		}
	case persona.IDTechEnthusiast:
		if isElectrified(v.Category) {
			return techElectrifiedBonus
		}
	case persona.IDEcoWarrior:
		if isElectrified(v.Category) {
			return ecoElectrifiedBonus
		}
	}
	return 0
}

// isElectrified reports whether the category is Hybrid or Electric.
func isElectrified(c catalog.Category) bool {
	return strings.EqualFold(string(c), "Hybrid") || strings.EqualFold(string(c), "Electric")
}

// Recommend scores every vehicle for the persona and returns the best match
// plus up to three secondary recommendations.
//
// The sort is stable: ties are broken by catalog order, so the
// earliest-indexed maximal-score vehicle always wins. A non-empty catalog
// always yields a best match, even when every score is zero. An empty
// catalog or nil persona yields an empty result, never an error.
func Recommend(vehicles []catalog.Vehicle, p *persona.Descriptor) Result {
	if len(vehicles) == 0 || p == nil {
		return Result{}
	}

	ranked := make([]catalog.Vehicle, len(vehicles))
	copy(ranked, vehicles)

	scores := make(map[string]int, len(ranked))
	for _, v := range ranked {
		scores[v.Name] = Score(v, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].Name] > scores[ranked[j].Name]
	})

	best := ranked[0]
	result := Result{BestMatch: &best}

	end := 1 + maxSecondary
	if end > len(ranked) {
		end = len(ranked)
	}
	if end > 1 {
		result.Secondary = append([]catalog.Vehicle(nil), ranked[1:end]...)
	}

	return result
}
