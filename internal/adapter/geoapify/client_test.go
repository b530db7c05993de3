package geoapify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colswx/placecast/internal/observability"
)

const testAPIKey = "test-key"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     discardLogger(),
	}
}

func results(rs ...searchResult) *[]searchResult {
	return &rs
}

func TestClient_Search_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Columbus", r.URL.Query().Get("text"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("apiKey"))

		resp := searchResponse{
			Results: results(searchResult{
				Lat:         39.9612,
				Lon:         -82.9988,
				CountryCode: "us",
				Formatted:   "Columbus, OH, United States of America",
			}),
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Search(context.Background(), "Columbus", "us")
	require.NoError(t, err)

	require.NotNil(t, resp.Results)
	require.Len(t, *resp.Results, 1)
	got := (*resp.Results)[0]
	assert.Equal(t, 39.9612, got.Lat)
	assert.Equal(t, -82.9988, got.Lon)
	assert.Equal(t, "us", got.CountryCode)
	assert.Equal(t, "Columbus, OH, United States of America", got.Formatted)
}

func TestClient_Autocomplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autocomplete", r.URL.Path)
		assert.Equal(t, "Colu", r.URL.Query().Get("text"))

		resp := searchResponse{
			Results: results(
				searchResult{CountryCode: "us", Formatted: "Columbus, OH"},
				searchResult{CountryCode: "us", Formatted: "Columbia, SC"},
			),
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Autocomplete(context.Background(), "Colu", "us")
	require.NoError(t, err)
	require.NotNil(t, resp.Results)
	assert.Len(t, *resp.Results, 2)
}

func TestClient_Search_MissingResultsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":400,"message":"bad request"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Search(context.Background(), "???", "us")
	require.NoError(t, err)
	assert.Nil(t, resp.Results, "missing field must decode to nil, not empty")
}

func TestClient_Search_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid apiKey"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Search(context.Background(), "Columbus", "us")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Search_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.Search(context.Background(), "Columbus", "us")
	require.Error(t, err)
}

func TestClient_Search_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Search(context.Background(), "Columbus", "us")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
