package services

import (
	"fmt"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/response_models"
)

func genericPOIs(n int) []response_models.POI {
	pois := make([]response_models.POI, n)
	for i := range pois {
		pois[i] = response_models.POI{
			Name:        fmt.Sprintf("Spot %d", i),
			Category:    "SIGHTSEEING",
			EntranceFee: 10,
		}
	}
	return pois
}

func slotsOf(day response_models.DailyPlan) []response_models.TimeSlot {
	out := make([]response_models.TimeSlot, len(day.Stops))
	for i, s := range day.Stops {
		out[i] = s.TimeSlot
	}
	return out
}

func newItinerary() ItineraryServiceInterface {
	return NewItineraryService(NewLandmarkClassifier(nil))
}

func TestBuildItineraryTenPOIsFourPerDay(t *testing.T) {
	days := newItinerary().BuildItinerary(genericPOIs(10), 4, 7, false)

	require.Len(t, days, 3)
	assert.Len(t, days[0].Stops, 4)
	assert.Len(t, days[1].Stops, 4)
	assert.Len(t, days[2].Stops, 2)

	assert.Equal(t, []response_models.TimeSlot{
		response_models.Morning, response_models.Morning, response_models.Afternoon, response_models.Evening,
	}, slotsOf(days[0]))

	// short last day keeps nominal thresholds
	assert.Equal(t, []response_models.TimeSlot{response_models.Morning, response_models.Morning}, slotsOf(days[2]))

	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		for _, s := range d.Stops {
			assert.Equal(t, StopDuration, s.Duration)
			assert.False(t, s.IsFamous)
		}
	}
	assert.Equal(t, "Spot 4", days[1].Stops[0].Name)
}

func TestBuildItineraryPrioritizesFamous(t *testing.T) {
	pois := []response_models.POI{
		{Name: "Lookout", Category: "VIEWPOINT"},
		{Name: "Castle", Category: "CASTLE"},
	}

	days := newItinerary().BuildItinerary(pois, 4, 7, true)

	require.Len(t, days, 1)
	assert.Equal(t, "Castle", days[0].Stops[0].Name)
	assert.True(t, days[0].Stops[0].IsFamous)
	assert.Equal(t, "Lookout", days[0].Stops[1].Name)

	assert.Equal(t, "Lookout", pois[0].Name, "input must not be reordered")
}

func TestBuildItineraryFlagsFamousWithoutSorting(t *testing.T) {
	pois := []response_models.POI{
		{Name: "Lookout", Category: "VIEWPOINT"},
		{Name: "Museum", Category: "MUSEUM"},
	}

	days := newItinerary().BuildItinerary(pois, 4, 7, false)

	require.Len(t, days, 1)
	assert.Equal(t, "Lookout", days[0].Stops[0].Name)
	assert.True(t, days[0].Stops[1].IsFamous)
}

func TestBuildItineraryEmptyInput(t *testing.T) {
	days := newItinerary().BuildItinerary(nil, 4, 7, true)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestBuildItineraryCoercesNonPositiveArguments(t *testing.T) {
	days := newItinerary().BuildItinerary(genericPOIs(40), 0, -1, false)

	require.Len(t, days, DefaultMaxDays)
	for _, d := range days {
		assert.Len(t, d.Stops, DefaultSpotsPerDay)
	}
}

func TestBuildItineraryDropsBeyondMaxDays(t *testing.T) {
	days := newItinerary().BuildItinerary(genericPOIs(10), 2, 3, false)

	require.Len(t, days, 3)
	assert.Equal(t, 6, CountStops(days))
	assert.Equal(t, "Spot 5", days[2].Stops[1].Name)
}

func TestBuildItinerarySpotsPerDayLargerThanInput(t *testing.T) {
	days := newItinerary().BuildItinerary(genericPOIs(3), 10, 7, false)

	require.Len(t, days, 1)
	assert.Equal(t, []response_models.TimeSlot{
		response_models.Morning, response_models.Morning, response_models.Morning,
	}, slotsOf(days[0]))
}

func TestTimeSlotThresholds(t *testing.T) {
	cases := []struct {
		spd  int
		want []response_models.TimeSlot
	}{
		{1, []response_models.TimeSlot{response_models.Morning}},
		{2, []response_models.TimeSlot{response_models.Morning, response_models.Afternoon}},
		{3, []response_models.TimeSlot{response_models.Morning, response_models.Morning, response_models.Afternoon}},
		{5, []response_models.TimeSlot{
			response_models.Morning, response_models.Morning, response_models.Morning,
			response_models.Afternoon, response_models.Evening,
		}},
	}

	for _, tc := range cases {
		got := make([]response_models.TimeSlot, tc.spd)
		for i := 0; i < tc.spd; i++ {
			got[i] = timeSlotFor(i, tc.spd)
		}
		assert.Equal(t, tc.want, got, "spotsPerDay=%d", tc.spd)
	}
}

func TestBuildItineraryInvariantsOnRandomInput(t *testing.T) {
	fake := faker.New()
	categories := []string{"MUSEUM", "CASTLE", "VIEWPOINT", "ATTRACTION", "RUINS", "FORT", "SIGHTSEEING"}
	builder := newItinerary()
	landmarks := NewLandmarkClassifier(nil)

	for round := 0; round < 200; round++ {
		n := fake.IntBetween(0, 60)
		spd := fake.IntBetween(1, 8)
		maxDays := fake.IntBetween(1, 9)
		prioritize := fake.Bool()

		pois := make([]response_models.POI, n)
		for i := range pois {
			pois[i] = response_models.POI{
				OSMID:    int64(i),
				Name:     fake.Lorem().Word(),
				Category: fake.RandomStringElement(categories),
			}
		}

		days := builder.BuildItinerary(pois, spd, maxDays, prioritize)

		want := n
		if spd*maxDays < want {
			want = spd * maxDays
		}
		require.Equal(t, want, CountStops(days), "round %d", round)
		require.LessOrEqual(t, len(days), maxDays)

		seen := map[int64]bool{}
		var flat []response_models.ScheduledStop
		for i, d := range days {
			require.NotEmpty(t, d.Stops)
			require.LessOrEqual(t, len(d.Stops), spd)
			if i < len(days)-1 {
				require.Len(t, d.Stops, spd)
			}
			for _, s := range d.Stops {
				require.False(t, seen[s.OSMID], "duplicate stop %d", s.OSMID)
				seen[s.OSMID] = true
				flat = append(flat, s)
			}
		}

		// stability: within one famous class, input order holds
		for i := 1; i < len(flat); i++ {
			a, b := flat[i-1], flat[i]
			if landmarks.IsFamousLandmark(a.Category) == landmarks.IsFamousLandmark(b.Category) {
				require.Less(t, a.OSMID, b.OSMID)
			}
			if !prioritize {
				require.Less(t, a.OSMID, b.OSMID)
			}
		}
	}
}
