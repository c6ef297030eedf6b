package ledger

import (
	"math"
	"time"

	"github.com/mmynk/tontine/internal/models"
)

// PendingIDPrefix marks synthesized entries for members with no payment row.
const PendingIDPrefix = "pending-"

// Entry is one member's contribution state for a cycle.
type Entry struct {
	// PaymentID is the stored payment ID, or PendingIDPrefix+MemberID when
	// nothing has been recorded yet.
	PaymentID   string
	MemberID    string
	MemberName  string
	MemberEmail string
	MemberPhone string
	Status      models.PaymentStatus
	Amount      float64
	PaidAt      time.Time
	// Recorded is false for synthesized entries.
	Recorded bool
}

// Ledger is the contribution state of one cycle across the group's active members.
type Ledger struct {
	CycleID     string
	CycleNumber int
	CycleStatus models.CycleStatus
	GroupID     string

	Entries []Entry

	// TotalExpected is the group's whole-cycle payout target.
	TotalExpected        float64
	TotalCollected       float64
	CompletionPercentage int
	PaidCount            int
	MemberCount          int
}

// Build computes a cycle's ledger.
//
// Algorithm:
// - One entry per active member, in the order given
// - A stored payment for (cycle, member) is used as-is
// - Otherwise a pending entry with the default share is synthesized
// - Payments of members outside the active set are ignored
func Build(cycle *models.Cycle, group *models.Group, members []*models.Member, payments []*models.Payment) *Ledger {
	l := &Ledger{
		CycleID:       cycle.ID,
		CycleNumber:   cycle.Number,
		CycleStatus:   cycle.Status,
		GroupID:       group.ID,
		TotalExpected: group.Amount,
	}

	active := make([]*models.Member, 0, len(members))
	for _, m := range members {
		if m.Active {
			active = append(active, m)
		}
	}

	// Later rows win if the store ever returns more than one per member
	byMember := make(map[string]*models.Payment, len(payments))
	for _, p := range payments {
		if p.CycleID == cycle.ID {
			byMember[p.MemberID] = p
		}
	}

	share := DefaultShare(group.Amount, len(active))
	l.Entries = make([]Entry, 0, len(active))
	for _, m := range active {
		e := Entry{
			MemberID:    m.ID,
			MemberName:  m.Name,
			MemberEmail: m.Email,
			MemberPhone: m.Phone,
		}
		if p, ok := byMember[m.ID]; ok {
			e.PaymentID = p.ID
			e.Status = p.Status
			e.Amount = p.Amount
			e.PaidAt = p.PaidAt
			e.Recorded = true
		} else {
			e.PaymentID = PendingIDPrefix + m.ID
			e.Status = models.PaymentPending
			e.Amount = share
		}

		if e.Status == models.PaymentPaid {
			l.PaidCount++
			l.TotalCollected += e.Amount
		}
		l.Entries = append(l.Entries, e)
	}

	l.MemberCount = len(l.Entries)
	l.TotalCollected = Round2(l.TotalCollected)
	l.CompletionPercentage = Percentage(l.TotalCollected, l.TotalExpected)
	return l
}

// Pending returns the entries still awaiting payment.
func (l *Ledger) Pending() []Entry {
	var pending []Entry
	for _, e := range l.Entries {
		if e.Status != models.PaymentPaid {
			pending = append(pending, e)
		}
	}
	return pending
}

// Outstanding is the amount still to collect, never negative.
func (l *Ledger) Outstanding() float64 {
	return math.Max(0, Round2(l.TotalExpected-l.TotalCollected))
}

// DefaultShare is a member's expected contribution: amount split equally,
// rounded to cents. Zero when there are no members.
func DefaultShare(amount float64, members int) float64 {
	if members <= 0 {
		return 0
	}
	return Round2(amount / float64(members))
}

// Percentage returns round(100 * collected / expected), or 0 when nothing is expected.
func Percentage(collected, expected float64) int {
	if expected <= 0 {
		return 0
	}
	return int(math.Round(100 * collected / expected))
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
