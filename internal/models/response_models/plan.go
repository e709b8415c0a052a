package response_models

type TripPlan struct {
	Destination *Destination   `json:"destination,omitempty"`
	Pace        int            `json:"pace"`
	MaxDays     int            `json:"max_days"`
	TripDays    int            `json:"trip_days"`
	Itinerary   []DailyPlan    `json:"itinerary"`
	Budget      BudgetEstimate `json:"budget"`
	POIStatus   POIStatus      `json:"poi_status"`
	Dropped     int            `json:"dropped_pois"` // POIs beyond the day cap
}
