package domain_models

// RawPlace is a place as it arrives from a seed dataset or the generator,
// before validation. Lat/Lng stay untyped so non-numeric values can be
// rejected instead of failing the whole payload.
type RawPlace struct {
	Name        string      `json:"name"`
	Lat         interface{} `json:"lat"`
	Lng         interface{} `json:"lng"`
	Category    string      `json:"category"`
	Rating      interface{} `json:"rating"`
	TicketPrice interface{} `json:"ticket_price"`
	Speciality  string      `json:"speciality"`
	LocalNote   string      `json:"local_note"`
	BestTime    string      `json:"best_time"`
	EffortType  string      `json:"effort_type"`
	ImageURL    string      `json:"image_url"`
}

// Place is a validated catalog entry. Immutable once built, except for the
// effort tier the clusterer assigns during traversal.
type Place struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	TicketPrice float64 `json:"ticket_price"`
	Speciality  string  `json:"speciality,omitempty"`
	LocalNote   string  `json:"local_note,omitempty"`
	BestTime    string  `json:"best_time,omitempty"`
	EffortType  string  `json:"effort_type"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// PlaceIndex maps canonical name to the validated place.
type PlaceIndex map[string]Place

// Cluster is one connected component under the proximity relation, in
// traversal encounter order.
type Cluster struct {
	ID     int     `json:"cluster_id"`
	Places []Place `json:"places"`
}

// ClusterSummary is the slim shape handed to the generator as context.
type ClusterSummary struct {
	ClusterID   int                  `json:"cluster_id"`
	ClusterSize int                  `json:"cluster_size"`
	Places      []ClusterSummaryItem `json:"places"`
}

type ClusterSummaryItem struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	EffortType string `json:"effort_type"`
}

// CityDataset is the on-disk seed shape: load(city) -> {city, places[]}.
type CityDataset struct {
	City   string     `json:"city"`
	Places []RawPlace `json:"places"`
}

// RankedPlace carries the ranking engine's score for one place.
type RankedPlace struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Score    float64 `json:"score"`
}

// TransportEstimate is the deterministic cost summary included in the
// generator context and surfaced in metadata.
type TransportEstimate struct {
	IntercityRoundTrip  float64 `json:"intercity_round_trip"`
	LocalDailyAvg       float64 `json:"local_daily_avg"`
	LocalTotalEstimate  float64 `json:"local_total_estimate"`
	GrandTotalTransport float64 `json:"grand_total_transport"`
	Notes               string  `json:"notes"`
}
