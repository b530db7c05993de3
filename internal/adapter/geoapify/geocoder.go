package geoapify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/colswx/placecast/internal/cache"
	"github.com/colswx/placecast/internal/domain"
	"github.com/colswx/placecast/internal/observability"
)

// shortcuts are well-known places resolved locally, bypassing the
// provider entirely. Keys are normalized (lowercased, trimmed).
var shortcuts = map[string]domain.Coordinate{
	"morrill tower": {Lat: 40.0003, Lon: -83.0219},
}

var errMissingResults = errors.New("response missing results field")

// Geocoder resolves free-text place names to coordinates, with a
// country filter and TTL-cached provider lookups.
type Geocoder struct {
	client  *Client
	cache   *cache.Cache[string, domain.Location]
	ttl     time.Duration
	country string
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewGeocoder creates a Geocoder targeting the given country code.
func NewGeocoder(client *Client, country string, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		client:  client,
		cache:   cache.New[string, domain.Location](clock),
		ttl:     ttl,
		country: country,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve maps place to a Location. Classified outcomes (Good, NotFound,
// NotInRegion) come from well-formed provider responses and are cached;
// transport failures, non-success statuses, and payloads without a
// results field are never cached and surface as InvalidSearch, so the
// next request retries as soon as the provider recovers.
func (g *Geocoder) Resolve(ctx context.Context, place string) domain.Location {
	normalized := strings.ToLower(strings.TrimSpace(place))

	if coord, ok := shortcuts[normalized]; ok {
		g.metrics.ResolveRequests.WithLabelValues("shortcut").Inc()
		return domain.Location{Coordinate: coord, Status: domain.ResolutionGood}
	}

	loc, hit, err := g.cache.GetOrCompute(normalized, g.ttl, func() (domain.Location, error) {
		resp, err := g.client.Search(ctx, strings.TrimSpace(place), g.country)
		if err != nil {
			return domain.Location{}, err
		}
		return g.classify(resp)
	})
	g.observeCache(hit)

	if err != nil {
		g.logger.Warn("geocoding search failed", "place", normalized, "error", err)
		loc = domain.Location{Status: domain.ResolutionInvalidSearch}
	}

	g.metrics.ResolveRequests.WithLabelValues(loc.Status.String()).Inc()
	return loc
}

// classify applies the response taxonomy in order: missing results field,
// empty candidate list, then a provider-order scan for the first
// candidate in the target country. Provider ordering is the only
// tie-break; never distance or confidence.
func (g *Geocoder) classify(resp searchResponse) (domain.Location, error) {
	if resp.Results == nil {
		return domain.Location{}, errMissingResults
	}
	results := *resp.Results
	if len(results) == 0 {
		return domain.Location{Status: domain.ResolutionNotFound}, nil
	}
	for _, r := range results {
		if !strings.EqualFold(r.CountryCode, g.country) {
			continue
		}
		coord := domain.Coordinate{Lat: r.Lat, Lon: r.Lon}
		if !coord.Valid() {
			return domain.Location{}, fmt.Errorf("result %q has out-of-range coordinate %.4f,%.4f", r.Formatted, r.Lat, r.Lon)
		}
		return domain.Location{Coordinate: coord, Status: domain.ResolutionGood}, nil
	}
	return domain.Location{Status: domain.ResolutionNotInRegion}, nil
}

func (g *Geocoder) observeCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	g.metrics.CacheLookups.WithLabelValues("geocode", result).Inc()
}
