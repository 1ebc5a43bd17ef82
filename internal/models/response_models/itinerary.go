package response_models

import "github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"

// Output shapes of the planner. Field names are the wire contract; the
// frontend consumes these keys as-is.

type ScheduleBlock struct {
	Time                string `json:"time"`
	Place               string `json:"place"`
	ReasonForTimeChoice string `json:"reason_for_time_choice"`
	ImageURL            string `json:"image_url"`
}

type FoodHalt struct {
	Time           string `json:"time"`
	MealType       string `json:"meal_type"`
	Outlet         string `json:"outlet"`
	SignatureDish  string `json:"signature_dish"`
	Area           string `json:"area"`
	ReasonSelected string `json:"reason_selected"`
}

type Day struct {
	Day                       int             `json:"day"`
	DayTimeWindow             string          `json:"day_time_window"`
	GeographicFlowExplanation string          `json:"geographic_flow_explanation"`
	TotalWalkingKmEstimate    float64         `json:"total_walking_km_estimate"`
	ScheduleBlocks            []ScheduleBlock `json:"schedule_blocks"`
	FoodHalts                 []FoodHalt      `json:"food_halts"`
	EstimatedDayCost          float64         `json:"estimated_day_cost"`
}

type HotelRecommendation struct {
	Area   string `json:"area"`
	Reason string `json:"reason"`
}

type Itinerary struct {
	Title               string              `json:"title"`
	HotelRecommendation HotelRecommendation `json:"hotel_recommendation"`
	Days                []Day               `json:"days"`
	TotalEstimatedCost  float64             `json:"total_estimated_cost"`
	WithinBudget        bool                `json:"within_budget"`
}

type ItineraryEnvelope struct {
	Itinerary Itinerary `json:"itinerary"`
}

type FullItineraryResponse struct {
	Itinerary Itinerary         `json:"itinerary"`
	Metadata  ItineraryMetadata `json:"metadata"`
}

type ItineraryMetadata struct {
	TotalLatencyMs      float64 `json:"total_latency_ms"`
	NumPlacesDiscovered int     `json:"num_places_discovered"`
	NumClusters         int     `json:"num_clusters"`
	CacheHit            bool    `json:"cache_hit"`
}

type DiscoverResponse struct {
	DiscoveredPlaces []domain_models.Place `json:"discovered_places"`
	Metadata         DiscoverMetadata      `json:"metadata"`
}

type DiscoverMetadata struct {
	LatencyMs float64 `json:"latency_ms"`
}
