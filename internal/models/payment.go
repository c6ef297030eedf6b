package models

import "time"

// PaymentStatus is whether a contribution has been received.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment is a member's contribution to one cycle.
// There is at most one Payment per (CycleID, MemberID).
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// CycleID is the cycle this contribution belongs to.
	CycleID string

	// MemberID is the contributing member.
	MemberID string

	// Amount is the contributed amount.
	Amount float64

	// Status is pending or paid.
	Status PaymentStatus

	// PaidAt is the payment date. Zero while pending.
	PaidAt time.Time

	// UpdatedAt is the Unix timestamp of the last write.
	UpdatedAt int64
}
