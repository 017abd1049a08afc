package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the calendar-date form accepted by query filters.
const DateLayout = time.DateOnly

// dateTimeLayouts is the ISO 8601 profile accepted for stay dates. Forms
// without an offset are read as UTC. Fractional seconds are accepted by
// the layouts carrying seconds.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses s using the ISO 8601 date-time profile.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("%q is not an ISO 8601 date-time", s)
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Errorf("%q is not a YYYY-MM-DD date", s)
	}

	return t, nil
}
