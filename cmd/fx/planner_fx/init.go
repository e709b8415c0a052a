package planner_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideLandmarkClassifier,
	services.NewItineraryService,
	services.NewBudgetService,
	services.NewPlannerService,
	services.NewMapService)

func provideLandmarkClassifier(cfg *config.Config) services.LandmarkClassifier {
	return services.NewLandmarkClassifier(cfg.FamousMarkers)
}
