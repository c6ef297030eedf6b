package models

import (
	"fmt"
	"time"
)

// CycleStatus is a position in the linear cycle lifecycle.
type CycleStatus string

const (
	CycleUpcoming  CycleStatus = "upcoming"
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
)

// Valid reports whether s is a known status.
func (s CycleStatus) Valid() bool {
	switch s {
	case CycleUpcoming, CycleActive, CycleCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a cycle may move from s to next.
// Only single forward steps are allowed.
func (s CycleStatus) CanTransition(next CycleStatus) bool {
	switch s {
	case CycleUpcoming:
		return next == CycleActive
	case CycleActive:
		return next == CycleCompleted
	}
	return false
}

// ParseCycleStatus converts a stored value into a CycleStatus.
func ParseCycleStatus(s string) (CycleStatus, error) {
	st := CycleStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown cycle status %q", s)
	}
	return st, nil
}

// Cycle is one payout round of a group.
type Cycle struct {
	// ID is the unique identifier for the cycle (UUID format).
	ID string

	// GroupID is the group this cycle belongs to.
	GroupID string

	// Number is the 1-based position of the cycle in its group.
	// Numbers of a group form the contiguous sequence 1..N.
	Number int

	// StartDate is when contributions for this cycle open.
	StartDate time.Time

	// EndDate is the payout date.
	EndDate time.Time

	// Status is the lifecycle position.
	Status CycleStatus

	// RecipientID is the member receiving this cycle's payout. Empty if unassigned.
	RecipientID string

	// CreatedAt is the Unix timestamp when the cycle was created.
	CreatedAt int64
}
