package catalog

// Category classifies a vehicle for display and persona matching.
//
// The set is open: new categories may appear in catalog data without code
// changes. Matching logic elsewhere uses case-insensitive substring
// comparison, never this constant list, so unknown categories still work.
type Category string

const (
	CategorySUV           Category = "SUV"
	CategorySedan         Category = "Sedan"
	CategoryHybrid        Category = "Hybrid"
	CategoryElectric      Category = "Electric"
	CategoryGRPerformance Category = "GR Performance"
	CategoryCommercial    Category = "Commercial"
)

// KnownCategories returns the categories used by the built-in catalog.
func KnownCategories() []Category {
	return []Category{
		CategorySUV,
		CategorySedan,
		CategoryHybrid,
		CategoryElectric,
		CategoryGRPerformance,
		CategoryCommercial,
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}
