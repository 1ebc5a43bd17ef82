package domain_models

// Draft types mirror whatever the generator chose to return. Every field is
// optional and every numeric stays untyped; nothing downstream may assume
// presence or shape.

type Draft struct {
	Itinerary DraftItinerary `json:"itinerary"`
}

type DraftItinerary struct {
	Title               string     `json:"title"`
	HotelRecommendation DraftHotel `json:"hotel_recommendation"`
	Days                []DraftDay `json:"days"`
}

type DraftHotel struct {
	Area   string `json:"area"`
	Reason string `json:"reason"`
}

type DraftDay struct {
	Day                       interface{}  `json:"day"`
	GeographicFlowExplanation string       `json:"geographic_flow_explanation"`
	TotalWalkingKmEstimate    interface{}  `json:"total_walking_km_estimate"`
	ScheduleBlocks            []DraftBlock `json:"schedule_blocks"`
	FoodHalts                 []DraftHalt  `json:"food_halts"`
}

type DraftBlock struct {
	Time                string `json:"time"`
	Place               string `json:"place"`
	ReasonForTimeChoice string `json:"reason_for_time_choice"`
}

type DraftHalt struct {
	Time           string `json:"time"`
	MealType       string `json:"meal_type"`
	Outlet         string `json:"outlet"`
	SignatureDish  string `json:"signature_dish"`
	Area           string `json:"area"`
	ReasonSelected string `json:"reason_selected"`
}

// DraftAugmentation is the discovery call's payload shape.
type DraftAugmentation struct {
	AdditionalPlaces []RawPlace `json:"additional_places"`
}
