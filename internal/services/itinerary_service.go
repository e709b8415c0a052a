package services

import (
	"sort"

	"tripplanner/internal/models/response_models"
)

const (
	DefaultSpotsPerDay = 4
	DefaultMaxDays     = 7
	StopDuration       = "2-3 Hours"
)

type ItineraryServiceInterface interface {
	BuildItinerary(pois []response_models.POI, spotsPerDay, maxDays int, prioritizeFamous bool) []response_models.DailyPlan
}

type ItineraryService struct {
	landmarks LandmarkClassifier
}

func NewItineraryService(landmarks LandmarkClassifier) ItineraryServiceInterface {
	return &ItineraryService{landmarks: landmarks}
}

// BuildItinerary chunks pois into days of spotsPerDay stops, at most maxDays days.
// POIs past the cap are dropped. The input slice is not modified.
func (s *ItineraryService) BuildItinerary(
	pois []response_models.POI,
	spotsPerDay, maxDays int,
	prioritizeFamous bool,
) []response_models.DailyPlan {
	if spotsPerDay <= 0 {
		spotsPerDay = DefaultSpotsPerDay
	}
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}

	days := make([]response_models.DailyPlan, 0)
	if len(pois) == 0 {
		return days
	}

	ordered := make([]response_models.POI, len(pois))
	copy(ordered, pois)
	if prioritizeFamous {
		sort.SliceStable(ordered, func(i, j int) bool {
			return s.landmarks.IsFamousLandmark(ordered[i].Category) &&
				!s.landmarks.IsFamousLandmark(ordered[j].Category)
		})
	}

	for start := 0; start < len(ordered) && len(days) < maxDays; start += spotsPerDay {
		end := start + spotsPerDay
		if end > len(ordered) {
			end = len(ordered)
		}

		stops := make([]response_models.ScheduledStop, 0, end-start)
		for i, poi := range ordered[start:end] {
			stops = append(stops, response_models.ScheduledStop{
				POI:      poi,
				TimeSlot: timeSlotFor(i, spotsPerDay),
				Duration: StopDuration,
				IsFamous: s.landmarks.IsFamousLandmark(poi.Category),
			})
		}

		days = append(days, response_models.DailyPlan{
			Day:   len(days) + 1,
			Stops: stops,
		})
	}

	return days
}

// timeSlotFor uses the nominal spotsPerDay, so a short last day may never reach Evening.
func timeSlotFor(i, spotsPerDay int) response_models.TimeSlot {
	pos, spd := float64(i), float64(spotsPerDay)
	switch {
	case pos < spd/2:
		return response_models.Morning
	case pos < spd*0.75:
		return response_models.Afternoon
	default:
		return response_models.Evening
	}
}

// CountStops returns the number of scheduled stops across all days.
func CountStops(days []response_models.DailyPlan) int {
	n := 0
	for _, d := range days {
		n += len(d.Stops)
	}
	return n
}
