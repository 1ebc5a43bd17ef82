package domain_models

// FoodOutlet is a sanitized culinary catalog entry.
type FoodOutlet struct {
	Name               string   `json:"name"`
	AreaOrNeighborhood string   `json:"area_or_neighborhood"`
	SignatureDishes    []string `json:"signature_dishes"`
	MealSlots          []string `json:"meal_slots"`
	LegacyScore        float64  `json:"legacy_score"`
	Cuisine            string   `json:"cuisine"`
}

// FoodIndex maps canonical outlet name to the sanitized outlet.
type FoodIndex map[string]FoodOutlet

// CulinaryIntelligence is the full sanitized payload of the culinary call.
// A transport or parse failure on that call degrades to EmptyCulinary.
type CulinaryIntelligence struct {
	City                 string       `json:"city"`
	BreakfastSignatures  []string     `json:"breakfast_signatures"`
	LunchStyle           []string     `json:"lunch_style"`
	SnackSignatures      []string     `json:"snack_signatures"`
	DinnerStyle          []string     `json:"dinner_style"`
	LegacyEstablishments []string     `json:"legacy_establishments"`
	HeritageFoodClusters []string     `json:"heritage_food_clusters"`
	FoodOutlets          []FoodOutlet `json:"food_outlets"`
}

// EmptyCulinary returns the empty-defaults structure used when the culinary
// call fails. Slices stay non-nil so the generator context serializes as [].
func EmptyCulinary(city string) CulinaryIntelligence {
	return CulinaryIntelligence{
		City:                 city,
		BreakfastSignatures:  []string{},
		LunchStyle:           []string{},
		SnackSignatures:      []string{},
		DinnerStyle:          []string{},
		LegacyEstablishments: []string{},
		HeritageFoodClusters: []string{},
		FoodOutlets:          []FoodOutlet{},
	}
}
