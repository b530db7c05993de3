// Package domain models the place-to-forecast pipeline: coordinates,
// resolution and weather statuses, and hourly temperature series.
//
// # Data Sources
//
// Place names are resolved through the Geoapify geocoding API, which
// returns candidate places with lat/lon, an ISO 3166-1 alpha-2 country
// code, and a formatted display string. Candidates are scanned in
// provider order and the first one matching the configured country wins;
// the provider's own relevance ordering is trusted, never re-ranked.
//
// Forecast data comes from the National Weather Service (NWS) public API
// at api.weather.gov. Retrieval is a two-step lookup: the points endpoint
// maps a coordinate to its forecast grid, and the grid endpoint returns
// raw forecast observations. NWS encodes each observation against an
// interval rather than a single instant:
//
//	"validTime": "2024-01-01T06:00:00+00:00/PT3H", "value": 21.1
//
// means 21.1 °C holds for the three hours starting at 06:00 UTC.
// [ParseValidTime] accepts exactly the PT<N>H duration form; any other
// ISO 8601 unit (minutes, days) is rejected as malformed data rather
// than guessed at. [ExpandHourly] flattens one interval into per-hour
// samples, converting Celsius to Fahrenheit (F = C*1.8 + 32).
// NWS serves intervals chronologically ordered and non-overlapping, so
// concatenating expanded intervals in provider order yields a strictly
// ascending series; that ordering is an upstream contract, not something
// this package re-establishes.
//
// # Status Taxonomy
//
// Every upstream failure collapses into one of two closed enums at the
// component boundary, so callers can render "try a different place"
// apart from "try again shortly" without ever seeing a transport error:
//
//	ResolutionStatus: Good | InvalidSearch | NotFound | NotInRegion
//	WeatherStatus:    Good | UpstreamError
//
// A Location carries a meaningful Coordinate only when its status is
// [ResolutionGood]; a WeatherSeries carries samples only when its status
// is [WeatherGood]. Partial series are never produced.
package domain
