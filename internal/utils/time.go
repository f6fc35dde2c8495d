package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseOptionalDate returns nil for blank input.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats a calendar date as YYYY-MM-DD, keeping the value's own zone.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDatePtr returns nil for a missing date so JSON renders null.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// FormatDateTime formats time as "YYYY-MM-DD HH:MM".
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}

// StartOfDay truncates t to midnight in its own zone.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
