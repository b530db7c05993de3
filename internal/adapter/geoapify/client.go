// Package geoapify adapts the Geoapify geocoding API to the domain's
// resolution and suggestion contracts.
package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/colswx/placecast/internal/observability"
)

// DefaultBaseURL is the production Geoapify geocoding endpoint.
const DefaultBaseURL = "https://api.geoapify.com/v1/geocode"

// Client issues geocoding requests against the Geoapify API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Geoapify client with a bounded request timeout.
// An empty baseURL selects DefaultBaseURL; tests point it at a fake.
func NewClient(baseURL, apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Search performs a full geocoding search for text, restricted to the
// given country code.
func (c *Client) Search(ctx context.Context, text, country string) (searchResponse, error) {
	return c.doRequest(ctx, "search", text, country)
}

// Autocomplete performs a partial-query lookup with the same response
// shape as Search.
func (c *Client) Autocomplete(ctx context.Context, text, country string) (searchResponse, error) {
	return c.doRequest(ctx, "autocomplete", text, country)
}

func (c *Client) doRequest(ctx context.Context, endpoint, text, country string) (searchResponse, error) {
	params := url.Values{
		"text":    {text},
		"country": {country},
		"apiKey":  {c.apiKey},
	}
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return searchResponse{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues("geoapify", endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return searchResponse{}, fmt.Errorf("geoapify %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return searchResponse{}, fmt.Errorf("geoapify API error: status %d: %s", resp.StatusCode, body)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return searchResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return parsed, nil
}

// Geoapify API response types. Results is a pointer so a payload that
// omits the field entirely is distinguishable from an empty candidate
// list; the two classify differently.

type searchResponse struct {
	Results *[]searchResult `json:"results"`
}

type searchResult struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryCode string  `json:"country_code"`
	Formatted   string  `json:"formatted"`
}
