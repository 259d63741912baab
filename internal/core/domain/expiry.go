package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used for document dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (optionally with a time part) in UTC.
// It reports false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpiresWithin reports whether the date falls on a calendar day between
// today and today+days, both inclusive.
func ExpiresWithin(date string, now time.Time, days int) bool {
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	t = StartOfDay(t)
	today := StartOfDay(now)
	return !t.Before(today) && !t.After(today.AddDate(0, 0, days))
}

// ExpiryState classifies a document by its expiry date.
type ExpiryState string

// Expiry states.
const (
	ExpiryExpired      ExpiryState = "expired"
	ExpiryExpiringSoon ExpiryState = "expiring_soon"
	ExpiryValid        ExpiryState = "valid"
	ExpiryUnknown      ExpiryState = "unknown"
)

// Thresholds for the expiring-soon state.
const (
	UrgentExpiryDays = 30
	SoonExpiryDays   = 90
)

// ExpiryStatus is the expiry classification of a date relative to now.
type ExpiryStatus struct {
	State ExpiryState
	// Days until expiry, negative once expired. Zero when State is unknown.
	Days int
	// Urgent is set for expiring-soon dates within UrgentExpiryDays.
	Urgent bool
}

// DaysUntil returns whole days from now until the date, rounding up.
func DaysUntil(date string, now time.Time) (int, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return 0, false
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), true
}

// StatusOf classifies an expiry date relative to now.
func StatusOf(date string, now time.Time) ExpiryStatus {
	days, ok := DaysUntil(date, now)
	if !ok {
		return ExpiryStatus{State: ExpiryUnknown}
	}
	switch {
	case days < 0:
		return ExpiryStatus{State: ExpiryExpired, Days: days}
	case days <= SoonExpiryDays:
		return ExpiryStatus{State: ExpiryExpiringSoon, Days: days, Urgent: days <= UrgentExpiryDays}
	default:
		return ExpiryStatus{State: ExpiryValid, Days: days}
	}
}

// Describe renders the status as a short phrase, empty when unknown.
func (s ExpiryStatus) Describe() string {
	switch s.State {
	case ExpiryExpired:
		return fmt.Sprintf("expired %d days ago", -s.Days)
	case ExpiryExpiringSoon:
		if s.Urgent {
			return fmt.Sprintf("expires in %d days, urgent", s.Days)
		}
		return fmt.Sprintf("expires in %d days", s.Days)
	case ExpiryValid:
		return "valid"
	default:
		return ""
	}
}
