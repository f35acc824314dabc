// Package models defines the domain types for lifetrack.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used by habit logs and date routes.
const DateLayout = "2006-01-02"

// Day formats t as a calendar day in t's own location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseTimestamp accepts an RFC 3339 timestamp or a bare YYYY-MM-DD day.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

// Timestamp is a time.Time that decodes from either timestamp form accepted by ParseTimestamp.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func timeOrNil(t *Timestamp) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
