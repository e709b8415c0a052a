package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at response_models.Coordinates) (response_models.Weather, error)
}

type OpenWeatherClient struct {
	cfg config.OpenWeatherConfig
	t   *transport
}

func NewOpenWeatherClient(cfg config.OpenWeatherConfig, httpClient *http.Client, log *zap.Logger) *OpenWeatherClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &OpenWeatherClient{cfg: cfg, t: newTransport("openweather", httpClient, log)}
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (w *OpenWeatherClient) CurrentWeather(ctx context.Context, at response_models.Coordinates) (response_models.Weather, error) {
	if w.cfg.APIKey == "" {
		return response_models.Weather{}, fmt.Errorf("openweather key missing: %w", utils.ErrProviderNotConfigured)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("appid", w.cfg.APIKey)
	q.Set("units", "metric")
	endpoint := w.cfg.BaseURL + "/data/2.5/weather?" + q.Encode()

	resp, err := w.t.doWithRetry(ctx, "weather", func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return response_models.Weather{}, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	var decoded openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return response_models.Weather{}, fmt.Errorf("decode openweather: %w", err)
	}

	out := response_models.Weather{TempC: decoded.Main.Temp}
	if len(decoded.Weather) > 0 {
		out.Description = decoded.Weather[0].Description
		out.Icon = decoded.Weather[0].Icon
	}
	return out, nil
}
