package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/colswx/placecast/internal/adapter/geoapify"
	httpadapter "github.com/colswx/placecast/internal/adapter/http"
	"github.com/colswx/placecast/internal/adapter/nws"
	"github.com/colswx/placecast/internal/config"
	"github.com/colswx/placecast/internal/observability"
	"github.com/colswx/placecast/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	geoClient := geoapify.NewClient(cfg.GeoapifyBaseURL, cfg.GeoapifyAPIKey, cfg.GeocodeTimeout, metrics, logger)
	geocoder := geoapify.NewGeocoder(geoClient, cfg.CountryCode, cfg.GeocodeCacheTTL, clock, metrics, logger)
	suggester := geoapify.NewSuggester(geoClient, cfg.CountryCode, cfg.GeocodeCacheTTL, clock, metrics, logger)

	nwsClient := nws.NewClient(cfg.NWSBaseURL, cfg.NWSUserAgent, cfg.WeatherTimeout, metrics, logger)
	forecaster := nws.NewForecaster(nwsClient, cfg.ForecastCacheTTL, clock, metrics, logger)

	p := pipeline.New(geocoder, forecaster, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, suggester, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("placecast started", "country", cfg.CountryCode, "addr", cfg.HTTPAddr)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
