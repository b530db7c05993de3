// Package pipeline composes geocoding and forecast retrieval into one
// outcome per place-name query.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/colswx/placecast/internal/domain"
)

// Geocoder resolves a free-text place name to a Location.
type Geocoder interface {
	Resolve(ctx context.Context, place string) domain.Location
}

// Forecaster retrieves an hourly temperature series for a coordinate.
type Forecaster interface {
	Retrieve(ctx context.Context, coord domain.Coordinate) domain.WeatherSeries
}

// Pipeline runs the resolution-and-retrieval chain. Each invocation is
// one synchronous call sequence; concurrent invocations are safe because
// the only shared state lives behind the component caches.
type Pipeline struct {
	geocoder   Geocoder
	forecaster Forecaster
	logger     *slog.Logger
}

// New creates a Pipeline from its two stages.
func New(geocoder Geocoder, forecaster Forecaster, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		geocoder:   geocoder,
		forecaster: forecaster,
		logger:     logger,
	}
}

// CheckReadiness reports whether the pipeline is wired with both stages.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.geocoder == nil || p.forecaster == nil {
		return errors.New("pipeline is missing a stage")
	}
	return nil
}

// Run resolves place and, only on a Good resolution, retrieves its
// forecast. A failed resolution short-circuits with an empty Good
// series: no weather request is ever issued for an unresolved location.
func (p *Pipeline) Run(ctx context.Context, place string) domain.Outcome {
	loc := p.geocoder.Resolve(ctx, place)
	if loc.Status != domain.ResolutionGood {
		p.logger.Debug("resolution failed, skipping forecast", "place", place, "status", loc.Status.String())
		return domain.Outcome{
			Location: loc,
			Weather:  domain.WeatherSeries{Status: domain.WeatherGood},
		}
	}

	return domain.Outcome{
		Location: loc,
		Weather:  p.forecaster.Retrieve(ctx, loc.Coordinate),
	}
}
