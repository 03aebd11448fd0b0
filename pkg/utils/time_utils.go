package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate reads a calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return t, nil
}

// TripEndDate is the last calendar day of a trip that starts on start and lasts days days.
func TripEndDate(start time.Time, days int) time.Time {
	if days < 1 {
		return start
	}
	return start.AddDate(0, 0, days-1)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
