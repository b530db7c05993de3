package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate lies within WGS-84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// ResolutionStatus classifies the outcome of one geocoding attempt.
type ResolutionStatus int

const (
	// ResolutionGood means a coordinate was resolved in the target country.
	ResolutionGood ResolutionStatus = iota
	// ResolutionInvalidSearch means the provider rejected the request or
	// returned a payload without a results field.
	ResolutionInvalidSearch
	// ResolutionNotFound means the provider returned zero candidates.
	ResolutionNotFound
	// ResolutionNotInRegion means candidates exist but none match the
	// target country filter.
	ResolutionNotInRegion
)

func (s ResolutionStatus) String() string {
	switch s {
	case ResolutionGood:
		return "good"
	case ResolutionInvalidSearch:
		return "invalid_search"
	case ResolutionNotFound:
		return "not_found"
	case ResolutionNotInRegion:
		return "not_in_region"
	default:
		return fmt.Sprintf("ResolutionStatus(%d)", int(s))
	}
}

// MarshalJSON renders the status as its snake_case name.
func (s ResolutionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// WeatherStatus classifies the outcome of one forecast retrieval.
type WeatherStatus int

const (
	// WeatherGood means a complete hourly series was produced.
	WeatherGood WeatherStatus = iota
	// WeatherUpstreamError means a network failure, non-success HTTP
	// status, or malformed payload aborted the retrieval.
	WeatherUpstreamError
)

func (s WeatherStatus) String() string {
	switch s {
	case WeatherGood:
		return "good"
	case WeatherUpstreamError:
		return "upstream_error"
	default:
		return fmt.Sprintf("WeatherStatus(%d)", int(s))
	}
}

// MarshalJSON renders the status as its snake_case name.
func (s WeatherStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Location is the geocoder's product. Coordinate carries the zero value
// unless Status is ResolutionGood.
type Location struct {
	Coordinate Coordinate       `json:"coordinate"`
	Status     ResolutionStatus `json:"status"`
}

// TemperatureSample is one hourly observation in Fahrenheit.
type TemperatureSample struct {
	Time       time.Time `json:"time"`
	Fahrenheit float64   `json:"temp_f"`
}

// WeatherSeries is the forecaster's product: hourly samples sorted
// ascending by time with no duplicates. Samples are empty unless Status
// is WeatherGood.
type WeatherSeries struct {
	Samples []TemperatureSample `json:"samples"`
	Status  WeatherStatus       `json:"status"`
}

// Outcome is the pipeline's combined product for one place-name query.
// The pair of statuses determines renderability; it is derived per
// request, never stored.
type Outcome struct {
	Location Location      `json:"location"`
	Weather  WeatherSeries `json:"weather"`
}
