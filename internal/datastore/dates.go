package datastore

import (
	"math"
	"strings"
	"time"
)

// Single-digit day and month fields are accepted, matching strptime.
const (
	dashedDateLayout  = "2-1-2006"
	slashedDateLayout = "2/1/2006"
)

var birthDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	dashedDateLayout,
	slashedDateLayout,
}

const daysPerYear = 365.2425

// ParseTransactionDate accepts day-month-year with dashes, falling back to
// slashes. Nothing else is tolerated.
func ParseTransactionDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if t, err := time.Parse(dashedDateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(slashedDateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, &DateParseError{Value: raw}
}

// ParseBirthDate returns nil for an empty value.
func ParseBirthDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, &DateParseError{Value: raw}
}

// AgeAt returns the age in mean Gregorian years, rounded half to even.
func AgeAt(dob, at time.Time) int {
	days := at.Sub(dob).Hours() / 24
	return int(math.RoundToEven(days / daysPerYear))
}
