package model

import (
	"strings"
	"time"
)

// ApproachTimeLayout is the calendar-date format used by the CAD data set.
const ApproachTimeLayout = "2006-Jan-02 15:04"

var inputLayouts = []string{
	ApproachTimeLayout,
	"2006-Jan-02 15:04:05",
}

// ParseApproachTime parses "YYYY-Mon-DD HH:MM" in UTC. Seconds are accepted
// and truncated.
func ParseApproachTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range inputLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.Truncate(time.Minute), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Field: "time", Value: s, Err: firstErr}
}

// FormatApproachTime renders t as "YYYY-Mon-DD HH:MM" in UTC.
func FormatApproachTime(t time.Time) string {
	return t.UTC().Format(ApproachTimeLayout)
}
