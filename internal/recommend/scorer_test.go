package recommend

import (
	"testing"

	"github.com/mohamedgewely/showroom-hub/internal/catalog"
	"github.com/mohamedgewely/showroom-hub/internal/persona"
)

func TestScore_FamilyFirstHighlander(t *testing.T) {
	v := catalog.Vehicle{
		Name:     "Toyota Highlander",
		Category: "SUV",
		Features: []string{"Seating for 8"},
	}
	p := &persona.Descriptor{
		ID:                      persona.IDFamilyFirst,
		RecommendedVehicleTypes: []string{"SUV"},
		RecommendedFeatures:     []string{"Safety"},
	}

	// 50 (category match) + 20 (Highlander name bonus) = 70
	if got := Score(v, p); got != 70 {
		t.Errorf("expected score 70, got %d", got)
	}
}

func TestScore_EcoWarriorHybrid(t *testing.T) {
	v := catalog.Vehicle{
		Name:     "Test Hatch",
		Category: "Hybrid",
	}
	p := &persona.Descriptor{
		ID:                      persona.IDEcoWarrior,
		RecommendedVehicleTypes: []string{"Hybrid", "Electric"},
		RecommendedFeatures:     []string{"Solar"},
	}

	// 50 (category match) + 40 (eco-warrior electrified bonus) = 90
	if got := Score(v, p); got != 90 {
		t.Errorf("expected score 90, got %d", got)
	}
}

func TestScore_TechEnthusiastBonusIsHalfEcoWarrior(t *testing.T) {
	v := catalog.Vehicle{Name: "Test Car", Category: "Electric"}

	tech := &persona.Descriptor{ID: persona.IDTechEnthusiast}
	eco := &persona.Descriptor{ID: persona.IDEcoWarrior}

	techScore := Score(v, tech)
	ecoScore := Score(v, eco)

	if techScore != 20 {
		t.Errorf("expected tech-enthusiast bonus 20, got %d", techScore)
	}
	if ecoScore != 40 {
		t.Errorf("expected eco-warrior bonus 40, got %d", ecoScore)
	}
}

func TestScore_NoBonusPersonas(t *testing.T) {
	// urban-explorer, business-commuter and weekend-adventurer have no
	// special-case bonus: only generic rules apply.
	v := catalog.Vehicle{Name: "Test Car", Category: "Hybrid"}

	for _, id := range []persona.ID{
		persona.IDUrbanExplorer,
		persona.IDBusinessCommuter,
		persona.IDWeekendAdventurer,
	} {
		p := &persona.Descriptor{ID: id}
		if got := Score(v, p); got != 0 {
			t.Errorf("persona %s: expected score 0 without affinities, got %d", id, got)
		}
	}
}

func TestScore_FeatureMatchesAreAdditive(t *testing.T) {
	v := catalog.Vehicle{
		Name:     "Test Car",
		Category: "Van",
		Features: []string{"Safety Sense", "Safety Lock", "Sunroof"},
	}
	p := &persona.Descriptor{
		RecommendedFeatures: []string{"Safety"},
	}

	// Two features contain "Safety": 2 * 10 = 20.
	if got := Score(v, p); got != 20 {
		t.Errorf("expected score 20, got %d", got)
	}
}

func TestScore_FeatureMatchCountsOncePerFeature(t *testing.T) {
	v := catalog.Vehicle{
		Name:     "Test Car",
		Category: "Van",
		Features: []string{"Safety Sense Display"},
	}
	p := &persona.Descriptor{
		RecommendedFeatures: []string{"Safety", "Display"},
	}

	// One feature matching two recommended substrings still scores +10.
	if got := Score(v, p); got != 10 {
		t.Errorf("expected score 10, got %d", got)
	}
}

func TestScore_CategoryMatchesSubstringBothDirections(t *testing.T) {
	v := catalog.Vehicle{Name: "Test Car", Category: "GR Performance"}

	// Recommended type is a substring of the category.
	p := &persona.Descriptor{RecommendedVehicleTypes: []string{"Performance"}}
	if got := Score(v, p); got != 50 {
		t.Errorf("expected score 50 for type-in-category match, got %d", got)
	}

	// Category is a substring of the recommended type.
	p = &persona.Descriptor{RecommendedVehicleTypes: []string{"GR Performance Coupe"}}
	if got := Score(v, p); got != 50 {
		t.Errorf("expected score 50 for category-in-type match, got %d", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	v := catalog.Vehicle{Name: "TOYOTA LAND CRUISER", Category: "suv"}
	p := &persona.Descriptor{
		RecommendedVehicleTypes: []string{"SUV", "land cruiser"},
	}

	// 50 (category) + 30 (name contains a recommended type).
	if got := Score(v, p); got != 80 {
		t.Errorf("expected score 80, got %d", got)
	}
}

func TestScore_NilPersona(t *testing.T) {
	v := catalog.Vehicle{Name: "Test Car", Category: "SUV"}
	if got := Score(v, nil); got != 0 {
		t.Errorf("expected score 0 for nil persona, got %d", got)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	personas := persona.All()
	vehicles, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}

	for _, p := range personas {
		desc := p
		for _, v := range vehicles {
			if got := Score(v, &desc); got < 0 {
				t.Errorf("score for %s/%s is negative: %d", p.ID, v.Name, got)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	vehicles, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}
	p, _ := persona.Resolve(persona.IDWeekendAdventurer)

	for _, v := range vehicles {
		first := Score(v, p)
		for i := 0; i < 10; i++ {
			if got := Score(v, p); got != first {
				t.Fatalf("score for %s not deterministic: %d then %d", v.Name, first, got)
			}
		}
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	p, _ := persona.Resolve(persona.IDFamilyFirst)

	result := Recommend(nil, p)

	if result.BestMatch != nil {
		t.Errorf("expected no best match for empty catalog, got %v", result.BestMatch)
	}
	if len(result.Secondary) != 0 {
		t.Errorf("expected no secondary results, got %d", len(result.Secondary))
	}
}

func TestRecommend_NilPersona(t *testing.T) {
	vehicles, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}

	result := Recommend(vehicles, nil)

	if result.BestMatch != nil || len(result.Secondary) != 0 {
		t.Error("expected empty result for nil persona")
	}
}

func TestRecommend_BestMatchHasMaxScore(t *testing.T) {
	vehicles, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}

	for _, p := range persona.All() {
		desc := p
		result := Recommend(vehicles, &desc)

		if result.BestMatch == nil {
			t.Fatalf("persona %s: expected a best match", p.ID)
		}

		best := Score(*result.BestMatch, &desc)
		for _, v := range vehicles {
			if Score(v, &desc) > best {
				t.Errorf("persona %s: %s outscores best match %s", p.ID, v.Name, result.BestMatch.Name)
			}
		}
	}
}

func TestRecommend_SecondaryExcludesBestMatch(t *testing.T) {
	vehicles, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}

	for _, p := range persona.All() {
		desc := p
		result := Recommend(vehicles, &desc)

		if len(result.Secondary) > 3 {
			t.Errorf("persona %s: secondary has %d entries, max is 3", p.ID, len(result.Secondary))
		}
		for _, v := range result.Secondary {
			if v.Name == result.BestMatch.Name {
				t.Errorf("persona %s: secondary contains best match %s", p.ID, v.Name)
			}
		}
	}
}

func TestRecommend_TieBrokenByCatalogOrder(t *testing.T) {
	vehicles := []catalog.Vehicle{
		{Name: "First Car", Category: "Van"},
		{Name: "Second Car", Category: "Van"},
		{Name: "Third Car", Category: "Van"},
	}
	p := &persona.Descriptor{ID: persona.IDUrbanExplorer}

	result := Recommend(vehicles, p)

	// All scores are zero; the earliest catalog entry must win.
	if result.BestMatch == nil || result.BestMatch.Name != "First Car" {
		t.Errorf("expected First Car as best match, got %v", result.BestMatch)
	}
	if len(result.Secondary) != 2 {
		t.Fatalf("expected 2 secondary results, got %d", len(result.Secondary))
	}
	if result.Secondary[0].Name != "Second Car" || result.Secondary[1].Name != "Third Car" {
		t.Errorf("secondary order not stable: %s, %s", result.Secondary[0].Name, result.Secondary[1].Name)
	}
}

func TestRecommend_SingleVehicle(t *testing.T) {
	vehicles := []catalog.Vehicle{{Name: "Only Car", Category: "Sedan"}}
	p, _ := persona.Resolve(persona.IDBusinessCommuter)

	result := Recommend(vehicles, p)

	if result.BestMatch == nil || result.BestMatch.Name != "Only Car" {
		t.Errorf("expected Only Car as best match, got %v", result.BestMatch)
	}
	if len(result.Secondary) != 0 {
		t.Errorf("expected no secondary results, got %d", len(result.Secondary))
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	vehicles := []catalog.Vehicle{
		{Name: "Low Car", Category: "Van"},
		{Name: "Hybrid Car", Category: "Hybrid"},
	}
	p, _ := persona.Resolve(persona.IDEcoWarrior)

	Recommend(vehicles, p)

	if vehicles[0].Name != "Low Car" || vehicles[1].Name != "Hybrid Car" {
		t.Error("Recommend reordered the caller's slice")
	}
}
