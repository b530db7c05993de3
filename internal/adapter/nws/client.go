// Package nws adapts the National Weather Service API (api.weather.gov)
// to the domain's forecast contract.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/colswx/placecast/internal/domain"
	"github.com/colswx/placecast/internal/observability"
)

// DefaultBaseURL is the production NWS API endpoint.
const DefaultBaseURL = "https://api.weather.gov"

// Client issues the two NWS requests behind a forecast retrieval: the
// point lookup that maps a coordinate to its forecast grid, and the grid
// data fetch. Every request carries the configured User-Agent contact
// string, which the NWS usage policy requires.
type Client struct {
	userAgent  string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NWS client with a bounded request timeout. An
// empty baseURL selects DefaultBaseURL; tests point it at a fake.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// LookupGridURL resolves a coordinate to its forecast-grid-data URL via
// the points endpoint.
func (c *Client) LookupGridURL(ctx context.Context, coord domain.Coordinate) (string, error) {
	u := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, coord.Lat, coord.Lon)

	var parsed pointsResponse
	if err := c.getJSON(ctx, u, "points", &parsed); err != nil {
		return "", err
	}
	if parsed.Properties.ForecastGridData == "" {
		return "", fmt.Errorf("points response for %.4f,%.4f missing forecastGridData", coord.Lat, coord.Lon)
	}
	return parsed.Properties.ForecastGridData, nil
}

// FetchGrid retrieves the raw temperature observations from a
// forecast-grid-data URL obtained via LookupGridURL.
func (c *Client) FetchGrid(ctx context.Context, gridURL string) ([]gridValue, error) {
	var parsed gridResponse
	if err := c.getJSON(ctx, gridURL, "grid", &parsed); err != nil {
		return nil, err
	}
	if parsed.Properties.Temperature.Values == nil {
		return nil, fmt.Errorf("grid response missing temperature values")
	}
	return parsed.Properties.Temperature.Values, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL, call string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues("nws", call).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("nws %s request: %w", call, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("nws API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", call, err)
	}
	return nil
}

// NWS API response types, trimmed to the fields this service reads.

type pointsResponse struct {
	Properties struct {
		ForecastGridData string `json:"forecastGridData"`
	} `json:"properties"`
}

type gridResponse struct {
	Properties struct {
		Temperature struct {
			Values []gridValue `json:"values"`
		} `json:"temperature"`
	} `json:"properties"`
}

type gridValue struct {
	ValidTime string  `json:"validTime"` // "<ISO 8601 start>/PT<N>H"
	Value     float64 `json:"value"`     // Celsius
}
