package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the service reads from the environment.
// It is built once at startup and injected; nothing else calls os.Getenv.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT" default:"8080"`

	PostgresURL   string `envconfig:"POSTGRES_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	Amadeus     AmadeusConfig
	Overpass    OverpassConfig
	OpenWeather OpenWeatherConfig
	Unsplash    UnsplashConfig

	FamousMarkers []string      `envconfig:"FAMOUS_MARKERS" default:"MUSEUM,CASTLE,FORT,MONUMENT"`
	POICacheTTL   time.Duration `envconfig:"POI_CACHE_TTL" default:"24h"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

type AmadeusConfig struct {
	ClientID     string `envconfig:"AMADEUS_CLIENT_ID"`
	ClientSecret string `envconfig:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string `envconfig:"AMADEUS_BASE_URL" default:"https://test.api.amadeus.com"`
}

type OverpassConfig struct {
	URL          string `envconfig:"OVERPASS_URL" default:"https://overpass-api.de/api/interpreter"`
	RadiusMeters int    `envconfig:"OVERPASS_RADIUS_METERS" default:"10000"`
}

type OpenWeatherConfig struct {
	APIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org"`
}

type UnsplashConfig struct {
	AccessKey string `envconfig:"UNSPLASH_ACCESS_KEY"`
	BaseURL   string `envconfig:"UNSPLASH_BASE_URL" default:"https://api.unsplash.com"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config from env: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Default returns a Config with the same defaults Load would apply to an empty environment.
func Default() *Config {
	cfg := Config{
		Env:                "production",
		LogLevel:           "info",
		Port:               "8080",
		CORSAllowedOrigins: "http://localhost:3000",
		Amadeus:            AmadeusConfig{BaseURL: "https://test.api.amadeus.com"},
		Overpass:           OverpassConfig{URL: "https://overpass-api.de/api/interpreter", RadiusMeters: 10000},
		OpenWeather:        OpenWeatherConfig{BaseURL: "https://api.openweathermap.org"},
		Unsplash:           UnsplashConfig{BaseURL: "https://api.unsplash.com"},
		FamousMarkers:      []string{"MUSEUM", "CASTLE", "FORT", "MONUMENT"},
		POICacheTTL:        24 * time.Hour,
		HTTPTimeout:        15 * time.Second,
	}
	return &cfg
}

// Normalize trims trailing slashes from base URLs and repairs non-positive limits.
func (c *Config) Normalize() {
	c.Amadeus.BaseURL = strings.TrimRight(c.Amadeus.BaseURL, "/")
	c.OpenWeather.BaseURL = strings.TrimRight(c.OpenWeather.BaseURL, "/")
	c.Unsplash.BaseURL = strings.TrimRight(c.Unsplash.BaseURL, "/")
	if c.Overpass.RadiusMeters <= 0 {
		c.Overpass.RadiusMeters = 10000
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 15 * time.Second
	}
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// GetAllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (a AmadeusConfig) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}
