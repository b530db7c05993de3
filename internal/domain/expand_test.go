package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHourly_OneSamplePerHour(t *testing.T) {
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	samples := ExpandHourly(start, 3, 10.0)

	require.Len(t, samples, 3)
	for i, s := range samples {
		assert.Equal(t, start.Add(time.Duration(i)*time.Hour), s.Time)
		assert.InDelta(t, 50.0, s.Fahrenheit, 1e-9) // 10C = 50F
	}
}

func TestExpandHourly_TimestampsStrictlyIncreasing(t *testing.T) {
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	samples := ExpandHourly(start, 24, -5.0)

	require.Len(t, samples, 24)
	for i := 1; i < len(samples); i++ {
		assert.Equal(t, time.Hour, samples[i].Time.Sub(samples[i-1].Time))
	}
}

func TestExpandHourly_CelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		want    float64
	}{
		{"freezing", 0.0, 32.0},
		{"boiling", 100.0, 212.0},
		{"negative", -40.0, -40.0},
		{"fractional", 21.5, 70.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := ExpandHourly(time.Now(), 1, tt.celsius)
			require.Len(t, samples, 1)
			assert.InDelta(t, tt.want, samples[0].Fahrenheit, 1e-9)
		})
	}
}

func TestExpandHourly_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, ExpandHourly(time.Now(), 0, 20.0))
	assert.Empty(t, ExpandHourly(time.Now(), -3, 20.0))
}

func TestParseValidTime_Success(t *testing.T) {
	tests := []struct {
		name      string
		validTime string
		wantStart time.Time
		wantHours int
	}{
		{
			"with offset",
			"2024-01-01T06:00:00+00:00/PT3H",
			time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			3,
		},
		{
			"zulu",
			"2024-03-10T18:00:00Z/PT1H",
			time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
			1,
		},
		{
			"no zone treated as utc",
			"2024-01-01T00:00:00/PT2H",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			2,
		},
		{
			"multi digit hours",
			"2024-01-01T00:00:00Z/PT12H",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, hours, err := ParseValidTime(tt.validTime)
			require.NoError(t, err)
			assert.True(t, start.Equal(tt.wantStart), "got %v, want %v", start, tt.wantStart)
			assert.Equal(t, tt.wantHours, hours)
		})
	}
}

func TestParseValidTime_MalformedInput(t *testing.T) {
	tests := []struct {
		name      string
		validTime string
	}{
		{"no separator", "2024-01-01T00:00:00Z"},
		{"minutes unit", "2024-01-01T00:00:00Z/PT30M"},
		{"days unit", "2024-01-01T00:00:00Z/P1D"},
		{"composite duration", "2024-01-01T00:00:00Z/PT1H30M"},
		{"empty duration", "2024-01-01T00:00:00Z/"},
		{"garbage duration", "2024-01-01T00:00:00Z/later"},
		{"bad timestamp", "not-a-time/PT1H"},
		{"empty hour count", "2024-01-01T00:00:00Z/PTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseValidTime(tt.validTime)
			assert.Error(t, err)
		})
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 40.0, Lon: -83.0}.Valid())
	assert.True(t, Coordinate{Lat: -90, Lon: 180}.Valid())
	assert.False(t, Coordinate{Lat: 91, Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: -181}.Valid())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "good", ResolutionGood.String())
	assert.Equal(t, "invalid_search", ResolutionInvalidSearch.String())
	assert.Equal(t, "not_found", ResolutionNotFound.String())
	assert.Equal(t, "not_in_region", ResolutionNotInRegion.String())
	assert.Equal(t, "good", WeatherGood.String())
	assert.Equal(t, "upstream_error", WeatherUpstreamError.String())
}
