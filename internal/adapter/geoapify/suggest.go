package geoapify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/colswx/placecast/internal/cache"
	"github.com/colswx/placecast/internal/observability"
)

// Suggester produces candidate place names for a partial query. It is a
// best-effort feature: every failure degrades to an empty list rather
// than an error, and failed lookups are never cached.
type Suggester struct {
	client  *Client
	cache   *cache.Cache[string, []string]
	ttl     time.Duration
	country string
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewSuggester creates a Suggester targeting the given country code.
func NewSuggester(client *Client, country string, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Suggester {
	return &Suggester{
		client:  client,
		cache:   cache.New[string, []string](clock),
		ttl:     ttl,
		country: country,
		metrics: metrics,
		logger:  logger,
	}
}

// Suggest returns formatted display names for candidates matching the
// target country, in provider order. The cache is keyed by the raw
// partial query, since each keystroke is its own upstream request.
func (s *Suggester) Suggest(ctx context.Context, partial string) []string {
	names, hit, err := s.cache.GetOrCompute(partial, s.ttl, func() ([]string, error) {
		resp, err := s.client.Autocomplete(ctx, partial, s.country)
		if err != nil {
			return nil, err
		}
		if resp.Results == nil {
			return nil, errMissingResults
		}
		var names []string
		for _, r := range *resp.Results {
			if strings.EqualFold(r.CountryCode, s.country) {
				names = append(names, r.Formatted)
			}
		}
		return names, nil
	})

	result := "miss"
	if hit {
		result = "hit"
	}
	s.metrics.CacheLookups.WithLabelValues("suggest", result).Inc()

	if err != nil {
		s.logger.Warn("autocomplete lookup failed", "query", partial, "error", err)
		s.metrics.SuggestRequests.WithLabelValues("error").Inc()
		return nil
	}
	s.metrics.SuggestRequests.WithLabelValues("success").Inc()
	return names
}
