package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripplanner/internal/config"
)

const envPrefix = "PLANCTL"

// provider settings that can come from flags, PLANCTL_* variables or ~/.planctl.yaml
const (
	keyAmadeusClientID     = "amadeus-client-id"
	keyAmadeusClientSecret = "amadeus-client-secret"
	keyAmadeusBaseURL      = "amadeus-base-url"
	keyOverpassURL         = "overpass-url"
	keyOverpassRadius      = "overpass-radius"
	keyOpenWeatherAPIKey   = "openweather-api-key"
	keyUnsplashAccessKey   = "unsplash-access-key"
	keyHTTPTimeout         = "http-timeout"
	keyLogLevel            = "log-level"
)

type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds the command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Builds day-by-day trip plans from the command line",
		Long:          `planctl geocodes a city, discovers its points of interest and prints a day-by-day itinerary with a daily budget estimate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.planctl.yaml)")
	root.PersistentFlags().String(keyAmadeusClientID, "", "Amadeus client id")
	root.PersistentFlags().String(keyAmadeusClientSecret, "", "Amadeus client secret")
	root.PersistentFlags().String(keyAmadeusBaseURL, "", "Amadeus base URL")
	root.PersistentFlags().String(keyOverpassURL, "", "Overpass interpreter URL")
	root.PersistentFlags().Int(keyOverpassRadius, 0, "POI search radius in meters")
	root.PersistentFlags().String(keyOpenWeatherAPIKey, "", "OpenWeather API key")
	root.PersistentFlags().String(keyUnsplashAccessKey, "", "Unsplash access key")
	root.PersistentFlags().Duration(keyHTTPTimeout, 0, "timeout for each provider request")
	root.PersistentFlags().String(keyLogLevel, "warn", "log level written to stderr")
	_ = a.v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newPlanCmd(a))
	return root
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".planctl")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", a.v.ConfigFileUsed())
	return nil
}

// serviceConfig starts from the service environment and overlays anything viper knows.
func (a *app) serviceConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	overlay := func(key string, dst *string) {
		if s := a.v.GetString(key); s != "" {
			*dst = s
		}
	}
	overlay(keyAmadeusClientID, &cfg.Amadeus.ClientID)
	overlay(keyAmadeusClientSecret, &cfg.Amadeus.ClientSecret)
	overlay(keyAmadeusBaseURL, &cfg.Amadeus.BaseURL)
	overlay(keyOverpassURL, &cfg.Overpass.URL)
	overlay(keyOpenWeatherAPIKey, &cfg.OpenWeather.APIKey)
	overlay(keyUnsplashAccessKey, &cfg.Unsplash.AccessKey)
	overlay(keyLogLevel, &cfg.LogLevel)
	if r := a.v.GetInt(keyOverpassRadius); r > 0 {
		cfg.Overpass.RadiusMeters = r
	}
	if d := a.v.GetDuration(keyHTTPTimeout); d > 0 {
		cfg.HTTPTimeout = d
	}

	cfg.Env = "production"
	cfg.Normalize()
	return cfg
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
