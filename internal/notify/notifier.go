// Package notify delivers contribution reminders through an external
// service. The domain decides who is eligible; a Notifier only transmits.
package notify

import (
	"context"
	"time"
)

// Reminder identifies a member who still owes a contribution.
type Reminder struct {
	GroupID     string
	GroupName   string
	CycleID     string
	CycleNumber int
	DueDate     time.Time

	MemberID string
	Name     string
	Email    string
	Phone    string
	Amount   float64
}

// Notifier sends reminders.
type Notifier interface {
	// SendReminders attempts every reminder and returns the ones delivered.
	// Reminders missing from the result were not delivered; err describes
	// the failures, if any.
	SendReminders(ctx context.Context, reminders []Reminder) ([]Reminder, error)
}
