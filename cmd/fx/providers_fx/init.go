package providers_fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/providers"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideGeocoder,
	providePOIFinder,
	provideWeather,
	provideImages)

func provideGeocoder(cfg *config.Config, client *http.Client, tokens mem.Store[string], log *zap.Logger) providers.CityGeocoder {
	return providers.NewAmadeusClient(cfg.Amadeus, client, tokens, log)
}

func providePOIFinder(cfg *config.Config, client *http.Client, log *zap.Logger) providers.POIFinder {
	return providers.NewOverpassClient(cfg.Overpass, client, log)
}

func provideWeather(cfg *config.Config, client *http.Client, log *zap.Logger) providers.WeatherProvider {
	return providers.NewOpenWeatherClient(cfg.OpenWeather, client, log)
}

func provideImages(cfg *config.Config, client *http.Client, log *zap.Logger) providers.ImageProvider {
	return providers.NewUnsplashClient(cfg.Unsplash, client, log)
}
