package request_models

// TravelRequest is the planner's input. Binding tags mirror the upstream
// contract: at least one day, a positive budget.
type TravelRequest struct {
	HomeCity        string   `json:"home_city" binding:"required"`
	DestinationCity string   `json:"destination_city" binding:"required"`
	NumDays         int      `json:"num_days" binding:"required,gt=0"`
	Budget          float64  `json:"budget" binding:"required,gt=0"`
	Interests       []string `json:"interests"`
}
