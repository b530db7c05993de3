package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExpandHourly flattens one interval-tagged Celsius observation into one
// Fahrenheit sample per covered hour: timestamps start + 0h, +1h, ...,
// +(hours-1)h, each carrying celsius*1.8 + 32. A non-positive hour count
// yields nil.
func ExpandHourly(start time.Time, hours int, celsius float64) []TemperatureSample {
	if hours <= 0 {
		return nil
	}
	fahrenheit := celsius*1.8 + 32
	samples := make([]TemperatureSample, hours)
	for i := range samples {
		samples[i] = TemperatureSample{
			Time:       start.Add(time.Duration(i) * time.Hour),
			Fahrenheit: fahrenheit,
		}
	}
	return samples
}

// ParseValidTime splits an NWS validTime string of the form
// "<ISO 8601 instant>/PT<N>H" into its start instant and whole-hour
// duration. Durations in any other unit are malformed data, not a case
// to guess at, so minutes, days, and composite forms all fail.
func ParseValidTime(validTime string) (time.Time, int, error) {
	startStr, durStr, ok := strings.Cut(validTime, "/")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("validTime %q: missing duration separator", validTime)
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		// NWS normally sends an explicit offset, but zone-less instants
		// appear in archived payloads; treat those as UTC.
		start, err = time.Parse("2006-01-02T15:04:05", startStr)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("validTime %q: %w", validTime, err)
		}
		start = start.UTC()
	}

	digits, found := strings.CutPrefix(durStr, "PT")
	if !found {
		return time.Time{}, 0, fmt.Errorf("validTime %q: duration %q is not PT<N>H", validTime, durStr)
	}
	digits, found = strings.CutSuffix(digits, "H")
	if !found {
		return time.Time{}, 0, fmt.Errorf("validTime %q: duration %q is not PT<N>H", validTime, durStr)
	}
	hours, err := strconv.Atoi(digits)
	if err != nil || hours < 0 {
		return time.Time{}, 0, fmt.Errorf("validTime %q: bad hour count %q", validTime, digits)
	}

	return start, hours, nil
}
