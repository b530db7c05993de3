// Package config reads service settings from environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Geoapify geocoding configuration. BaseURL is overridable so local
	// setups can point at a recording proxy; empty selects the provider
	// default.
	GeoapifyAPIKey  string
	GeoapifyBaseURL string
	CountryCode     string
	GeocodeTimeout  time.Duration
	GeocodeCacheTTL time.Duration

	// NWS weather configuration. UserAgent is the identifying contact
	// string the NWS usage policy requires on every request.
	NWSUserAgent     string
	NWSBaseURL       string
	WeatherTimeout   time.Duration
	ForecastCacheTTL time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is honored when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
		GeoapifyAPIKey:  os.Getenv("GEOAPIFY_API_KEY"),
		GeoapifyBaseURL: os.Getenv("GEOAPIFY_BASE_URL"),
		CountryCode:     envOrDefault("COUNTRY_CODE", "us"),
		NWSUserAgent:    os.Getenv("NWS_USER_AGENT"),
		NWSBaseURL:      os.Getenv("NWS_BASE_URL"),
	}

	var err error
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.GeocodeTimeout, err = parseDuration("GEOCODE_TIMEOUT", "5s"); err != nil {
		return nil, err
	}
	if cfg.WeatherTimeout, err = parseDuration("WEATHER_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheTTL, err = parseDuration("GEOCODE_CACHE_TTL", "12h"); err != nil {
		return nil, err
	}
	if cfg.ForecastCacheTTL, err = parseDuration("FORECAST_CACHE_TTL", "60s"); err != nil {
		return nil, err
	}

	if cfg.GeoapifyAPIKey == "" {
		return nil, fmt.Errorf("GEOAPIFY_API_KEY is required")
	}
	if cfg.NWSUserAgent == "" {
		return nil, fmt.Errorf("NWS_USER_AGENT is required")
	}

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
