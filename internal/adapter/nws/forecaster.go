package nws

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/colswx/placecast/internal/cache"
	"github.com/colswx/placecast/internal/domain"
	"github.com/colswx/placecast/internal/observability"
)

// Forecaster produces hourly temperature series for coordinates,
// caching complete series briefly since forecast data is near-real-time.
type Forecaster struct {
	client  *Client
	cache   *cache.Cache[domain.Coordinate, domain.WeatherSeries]
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewForecaster creates a Forecaster with the given series TTL.
func NewForecaster(client *Client, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Forecaster {
	return &Forecaster{
		client:  client,
		cache:   cache.New[domain.Coordinate, domain.WeatherSeries](clock),
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Retrieve performs the two-step grid lookup and expands each interval
// observation into per-hour samples. Any failure at either step, or a
// malformed observation, aborts the whole retrieval and yields an empty
// UpstreamError series; partial results are never returned and failures
// are never cached. Intervals are concatenated in provider order: NWS
// serves them chronologically ordered and non-overlapping (an upstream
// contract, see the domain package docs).
func (f *Forecaster) Retrieve(ctx context.Context, coord domain.Coordinate) domain.WeatherSeries {
	series, hit, err := f.cache.GetOrCompute(coord, f.ttl, func() (domain.WeatherSeries, error) {
		return f.fetch(ctx, coord)
	})

	result := "miss"
	if hit {
		result = "hit"
	}
	f.metrics.CacheLookups.WithLabelValues("forecast", result).Inc()

	if err != nil {
		f.logger.Warn("forecast retrieval failed", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		series = domain.WeatherSeries{Status: domain.WeatherUpstreamError}
	}

	f.metrics.ForecastRequests.WithLabelValues(series.Status.String()).Inc()
	return series
}

func (f *Forecaster) fetch(ctx context.Context, coord domain.Coordinate) (domain.WeatherSeries, error) {
	gridURL, err := f.client.LookupGridURL(ctx, coord)
	if err != nil {
		return domain.WeatherSeries{}, err
	}

	values, err := f.client.FetchGrid(ctx, gridURL)
	if err != nil {
		return domain.WeatherSeries{}, err
	}

	var samples []domain.TemperatureSample
	for _, v := range values {
		start, hours, err := domain.ParseValidTime(v.ValidTime)
		if err != nil {
			return domain.WeatherSeries{}, fmt.Errorf("grid observation: %w", err)
		}
		samples = append(samples, domain.ExpandHourly(start, hours, v.Value)...)
	}

	return domain.WeatherSeries{Samples: samples, Status: domain.WeatherGood}, nil
}
