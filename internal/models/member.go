package models

// Member is a participant of exactly one group.
// Only active members count toward contribution totals and role resolution.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// GroupID is the group this member belongs to.
	GroupID string

	// Name is the display name.
	Name string

	// Email is matched exactly against the caller's session email.
	// Unique within a group.
	Email string

	// Phone is an optional contact number.
	Phone string

	// Active is false for members who left the group but whose history is kept.
	Active bool

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}
