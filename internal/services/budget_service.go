package services

import (
	"fmt"
	"math"
	"strings"

	"tripplanner/internal/models/response_models"
)

const (
	TierBudget  = "budget"
	TierMid     = "mid"
	TierLuxury  = "luxury"
	DefaultTier = TierMid

	// poisPerEstimatedDay is the fixed divisor behind the default estimate.
	poisPerEstimatedDay = 4
)

type tierProfile struct {
	Food       float64
	Stay       float64
	Multiplier float64
}

var tierProfiles = map[string]tierProfile{
	TierBudget: {Food: 25, Stay: 45, Multiplier: 1.0},
	TierMid:    {Food: 60, Stay: 110, Multiplier: 1.5},
	TierLuxury: {Food: 150, Stay: 400, Multiplier: 3.0},
}

type BudgetServiceInterface interface {
	// EstimateBudget assumes four POIs per day regardless of the itinerary pace.
	EstimateBudget(tier string, pois []response_models.POI) response_models.BudgetEstimate
	// EstimateBudgetForDays spreads the fees over the real number of itinerary days.
	EstimateBudgetForDays(tier string, pois []response_models.POI, days int) response_models.BudgetEstimate
}

type BudgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &BudgetService{}
}

// ResolveTier lower-cases tier and falls back to mid for anything unknown.
func ResolveTier(tier string) string {
	t := strings.ToLower(strings.TrimSpace(tier))
	if _, ok := tierProfiles[t]; ok {
		return t
	}
	return DefaultTier
}

func (b *BudgetService) EstimateBudget(tier string, pois []response_models.POI) response_models.BudgetEstimate {
	days := math.Max(float64(len(pois))/poisPerEstimatedDay, 1)
	return estimate(tier, pois, days)
}

func (b *BudgetService) EstimateBudgetForDays(tier string, pois []response_models.POI, days int) response_models.BudgetEstimate {
	if days <= 0 {
		return b.EstimateBudget(tier, pois)
	}
	return estimate(tier, pois, float64(days))
}

func estimate(tier string, pois []response_models.POI, days float64) response_models.BudgetEstimate {
	name := ResolveTier(tier)
	profile := tierProfiles[name]

	totalFees := 0.0
	for _, p := range pois {
		totalFees += p.EntranceFee
	}

	activities := roundHalfUp(totalFees * profile.Multiplier / days)
	total := math.Round((profile.Food+profile.Stay+activities)*100) / 100

	return response_models.BudgetEstimate{
		Tier:         name,
		Food:         profile.Food,
		Stay:         profile.Stay,
		Activities:   activities,
		Total:        total,
		TotalDisplay: fmt.Sprintf("%.2f", total),
		DaysBasis:    days,
	}
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
