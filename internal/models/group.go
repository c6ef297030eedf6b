package models

import (
	"fmt"
	"time"
)

// Frequency is how often a group collects contributions.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// Next returns the date one period after d.
func (f Frequency) Next(d time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return d.AddDate(0, 0, 7)
	case FrequencyBiWeekly:
		return d.AddDate(0, 0, 14)
	case FrequencyQuarterly:
		return d.AddDate(0, 3, 0)
	default:
		return d.AddDate(0, 1, 0)
	}
}

// ParseFrequency converts a wire value into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q", s)
	}
	return f, nil
}

// Group represents a tontine: a set of members who each contribute a share
// of Amount every cycle, with one member receiving the pot per cycle.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Family Savings").
	Name string

	// Description is optional free text shown on the group page.
	Description string

	// Amount is the whole-cycle payout target. Always > 0.
	Amount float64

	// Frequency is the contribution frequency.
	Frequency Frequency

	// StartDate is the date the first cycle starts.
	StartDate time.Time

	// EndDate is optional; the zero value means open-ended.
	EndDate time.Time

	// CreatedBy is the user ID of the creator, who administers the group.
	// It never changes after creation.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasEndDate reports whether the group has a fixed end date.
func (g *Group) HasEndDate() bool {
	return !g.EndDate.IsZero()
}
