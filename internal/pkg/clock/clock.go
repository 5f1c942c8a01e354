// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/champion-grid/internal/pkg/clock Clock

// DateLayout formats the calendar day a daily challenge belongs to
const DateLayout = "2006-01-02"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Date returns the UTC calendar day of t, e.g. "2025-03-14"
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a day produced by Date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
