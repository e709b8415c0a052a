package poisfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/providers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, providePoisRepo, provideDestinationService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	if db == nil {
		return nil
	}
	return repositories.NewCityRepository(db)
}

func providePoisRepo(db *gorm.DB) repositories.POIRepository {
	if db == nil {
		return nil
	}
	return repositories.NewPOIRepository(db)
}

type destinationParams struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Geocoder providers.CityGeocoder
	Finder   providers.POIFinder
	Weather  providers.WeatherProvider
	Images   providers.ImageProvider
	Cities   repositories.CityRepository
	POIs     repositories.POIRepository
	Payloads repositories.PayloadCache
}

func provideDestinationService(p destinationParams) services.DestinationServiceInterface {
	return services.NewDestinationService(services.DestinationDeps{
		Geocoder:    p.Geocoder,
		Finder:      p.Finder,
		Weather:     p.Weather,
		Images:      p.Images,
		Cities:      p.Cities,
		POIs:        p.POIs,
		Payloads:    p.Payloads,
		POICacheTTL: p.Config.POICacheTTL,
		Logger:      p.Logger,
	})
}
