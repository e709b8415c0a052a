package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const MaxTripDays = 30

type PlanOptions struct {
	City             string
	Pace             int
	MaxDays          int
	Tier             string
	PrioritizeFamous bool
	AlignBudget      bool
}

// NewPlanOptions turns loosely typed user input into plan options.
// Only a missing city is an error; every other field falls back to a default.
func NewPlanOptions(q request_models.PlanQuery) (PlanOptions, error) {
	city := strings.TrimSpace(q.City)
	if city == "" {
		return PlanOptions{}, fmt.Errorf("city is required: %w", utils.ErrInvalidInput)
	}
	opts := optionsFrom(q.Pace, q.Budget, q.Days, ParseFlag(q.PrioritizeFamous, true), ParseFlag(q.AlignBudget, false))
	opts.City = city
	return opts, nil
}

func NewPreviewOptions(req request_models.PreviewPlanRequest) PlanOptions {
	prioritize := true
	if req.PrioritizeFamous != nil {
		prioritize = *req.PrioritizeFamous
	}
	return optionsFrom(string(req.Pace), req.Budget, string(req.Days), prioritize, req.AlignBudget)
}

func optionsFrom(pace, budget, days string, prioritize, align bool) PlanOptions {
	return PlanOptions{
		Pace:             ParsePace(pace),
		MaxDays:          ParseDays(days),
		Tier:             ResolveTier(budget),
		PrioritizeFamous: prioritize,
		AlignBudget:      align,
	}
}

// ParseFlag reads a strconv.ParseBool value; empty or malformed input yields def.
func ParseFlag(raw string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return b
}

// ParsePace reads the leading integer of raw ("3", "3.5", "5 spots").
// Anything unparsable or below 1 becomes DefaultSpotsPerDay.
func ParsePace(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n <= 0 {
		return DefaultSpotsPerDay
	}
	return n
}

// ParseDays accepts 1..MaxTripDays and falls back to DefaultMaxDays.
func ParseDays(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n <= 0 || n > MaxTripDays {
		return DefaultMaxDays
	}
	return n
}

func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

type PlannerServiceInterface interface {
	Plan(ctx context.Context, opts PlanOptions) (*response_models.TripPlan, error)
	PlanFromPOIs(opts PlanOptions, pois []response_models.POI) *response_models.TripPlan
}

type PlannerService struct {
	destinations DestinationServiceInterface
	itinerary    ItineraryServiceInterface
	budget       BudgetServiceInterface
	log          *zap.Logger
}

func NewPlannerService(
	destinations DestinationServiceInterface,
	itinerary ItineraryServiceInterface,
	budget BudgetServiceInterface,
	log *zap.Logger,
) PlannerServiceInterface {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlannerService{
		destinations: destinations,
		itinerary:    itinerary,
		budget:       budget,
		log:          log.Named("planner"),
	}
}

func (p *PlannerService) Plan(ctx context.Context, opts PlanOptions) (*response_models.TripPlan, error) {
	dest, err := p.destinations.Discover(ctx, opts.City)
	if err != nil {
		return nil, err
	}

	plan := p.PlanFromPOIs(opts, dest.POIs)
	plan.Destination = dest

	p.log.Info("plan generated",
		zap.String("city", dest.City.Name),
		zap.Int("pois", len(dest.POIs)),
		zap.Int("days", plan.TripDays),
		zap.String("tier", plan.Budget.Tier))
	return plan, nil
}

// PlanFromPOIs runs the itinerary and budget estimate over pois. Nothing is stored.
func (p *PlannerService) PlanFromPOIs(opts PlanOptions, pois []response_models.POI) *response_models.TripPlan {
	if opts.Pace <= 0 {
		opts.Pace = DefaultSpotsPerDay
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = DefaultMaxDays
	}

	days := p.itinerary.BuildItinerary(pois, opts.Pace, opts.MaxDays, opts.PrioritizeFamous)

	var estimate response_models.BudgetEstimate
	if opts.AlignBudget {
		estimate = p.budget.EstimateBudgetForDays(opts.Tier, pois, len(days))
	} else {
		estimate = p.budget.EstimateBudget(opts.Tier, pois)
	}

	metrics.PlansGenerated.WithLabelValues(estimate.Tier).Inc()

	return &response_models.TripPlan{
		Pace:      opts.Pace,
		MaxDays:   opts.MaxDays,
		TripDays:  len(days),
		Itinerary: days,
		Budget:    estimate,
		POIStatus: statusOf(pois),
		Dropped:   len(pois) - CountStops(days),
	}
}
