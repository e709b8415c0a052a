package response_models

type TimeSlot string

const (
	Morning   TimeSlot = "Morning"
	Afternoon TimeSlot = "Afternoon"
	Evening   TimeSlot = "Evening"
)

type ScheduledStop struct {
	POI
	TimeSlot TimeSlot `json:"time_slot"`
	Duration string   `json:"duration"`
	IsFamous bool     `json:"is_famous"`
}

type DailyPlan struct {
	Day   int             `json:"day"`
	Stops []ScheduledStop `json:"stops"`
}
