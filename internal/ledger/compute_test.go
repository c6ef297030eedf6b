package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tontine/internal/models"
)

func members(n int) []*models.Member {
	var out []*models.Member
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		out = append(out, &models.Member{ID: id, Name: "Member " + id, Email: id + "@example.com", Active: true})
	}
	return out
}

func paid(cycleID, memberID string, amount float64) *models.Payment {
	return &models.Payment{
		ID:       "pay-" + memberID,
		CycleID:  cycleID,
		MemberID: memberID,
		Amount:   amount,
		Status:   models.PaymentPaid,
		PaidAt:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuild(t *testing.T) {
	cycle := &models.Cycle{ID: "c1", GroupID: "g1", Number: 1, Status: models.CycleActive}
	group := &models.Group{ID: "g1", Amount: 1000}

	tests := []struct {
		name         string
		group        *models.Group
		members      []*models.Member
		payments     []*models.Payment
		validateFunc func(t *testing.T, l *Ledger)
	}{
		{
			name:    "no payments synthesizes pending entries",
			group:   group,
			members: members(4),
			validateFunc: func(t *testing.T, l *Ledger) {
				if len(l.Entries) != 4 {
					t.Fatalf("Expected 4 entries, got %d", len(l.Entries))
				}
				for _, e := range l.Entries {
					if e.Recorded {
						t.Errorf("Entry for %s should be synthesized", e.MemberID)
					}
					if !strings.HasPrefix(e.PaymentID, PendingIDPrefix) {
						t.Errorf("Expected pending ID prefix, got %s", e.PaymentID)
					}
					if e.Amount != 250 {
						t.Errorf("Expected default share 250, got %v", e.Amount)
					}
					if e.Status != models.PaymentPending {
						t.Errorf("Expected pending status, got %s", e.Status)
					}
				}
				if l.CompletionPercentage != 0 {
					t.Errorf("Expected 0%%, got %d%%", l.CompletionPercentage)
				}
			},
		},
		{
			name:     "three of four paid",
			group:    group,
			members:  members(4),
			payments: []*models.Payment{paid("c1", "a", 250), paid("c1", "b", 250), paid("c1", "c", 250)},
			validateFunc: func(t *testing.T, l *Ledger) {
				if l.PaidCount != 3 {
					t.Errorf("Expected paidCount 3, got %d", l.PaidCount)
				}
				if l.TotalCollected != 750 {
					t.Errorf("Expected collected 750, got %v", l.TotalCollected)
				}
				if l.CompletionPercentage != 75 {
					t.Errorf("Expected 75%%, got %d%%", l.CompletionPercentage)
				}
				if l.Outstanding() != 250 {
					t.Errorf("Expected outstanding 250, got %v", l.Outstanding())
				}
				if got := len(l.Pending()); got != 1 {
					t.Errorf("Expected 1 pending entry, got %d", got)
				}
			},
		},
		{
			name:    "uneven share rounds to cents",
			group:   &models.Group{ID: "g1", Amount: 100},
			members: members(3),
			validateFunc: func(t *testing.T, l *Ledger) {
				for _, e := range l.Entries {
					if e.Amount != 33.33 {
						t.Errorf("Expected 33.33, got %v", e.Amount)
					}
				}
			},
		},
		{
			name:  "inactive members are excluded",
			group: group,
			members: func() []*models.Member {
				ms := members(4)
				ms[3].Active = false
				return ms
			}(),
			payments: []*models.Payment{paid("c1", "d", 250)},
			validateFunc: func(t *testing.T, l *Ledger) {
				if l.MemberCount != 3 {
					t.Errorf("Expected 3 members, got %d", l.MemberCount)
				}
				if l.TotalCollected != 0 {
					t.Errorf("Expected inactive member payment to be ignored, got %v", l.TotalCollected)
				}
				if l.Entries[0].Amount != 333.33 {
					t.Errorf("Expected share 333.33, got %v", l.Entries[0].Amount)
				}
			},
		},
		{
			name:    "payments from other cycles are ignored",
			group:   group,
			members: members(2),
			payments: []*models.Payment{paid("c2", "a", 500)},
			validateFunc: func(t *testing.T, l *Ledger) {
				if l.PaidCount != 0 {
					t.Errorf("Expected paidCount 0, got %d", l.PaidCount)
				}
			},
		},
		{
			name:    "overpayment can exceed 100 percent",
			group:   group,
			members: members(2),
			payments: []*models.Payment{paid("c1", "a", 700), paid("c1", "b", 700)},
			validateFunc: func(t *testing.T, l *Ledger) {
				if l.CompletionPercentage != 140 {
					t.Errorf("Expected 140%%, got %d%%", l.CompletionPercentage)
				}
				if l.Outstanding() != 0 {
					t.Errorf("Expected outstanding 0, got %v", l.Outstanding())
				}
			},
		},
		{
			name:  "no members",
			group: group,
			validateFunc: func(t *testing.T, l *Ledger) {
				if len(l.Entries) != 0 {
					t.Errorf("Expected no entries, got %d", len(l.Entries))
				}
				if l.CompletionPercentage != 0 {
					t.Errorf("Expected 0%%, got %d%%", l.CompletionPercentage)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Build(cycle, tt.group, tt.members, tt.payments))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		collected, expected float64
		want                int
	}{
		{0, 0, 0},
		{100, 0, 0},
		{0, 1000, 0},
		{750, 1000, 75},
		{1, 3, 33},
		{2, 3, 67},
		{1000, 1000, 100},
	}

	for _, tt := range tests {
		if got := Percentage(tt.collected, tt.expected); got != tt.want {
			t.Errorf("Percentage(%v, %v) = %d, want %d", tt.collected, tt.expected, got, tt.want)
		}
	}
}

func TestPercentage_Monotonic(t *testing.T) {
	prev := 0
	for collected := 0.0; collected <= 1000; collected += 12.5 {
		got := Percentage(collected, 1000)
		if got < prev {
			t.Fatalf("percentage decreased from %d to %d at %v", prev, got, collected)
		}
		prev = got
	}
}

func TestBuildReport(t *testing.T) {
	group := &models.Group{ID: "g1", Amount: 100}
	ms := members(2)
	cycles := []*models.Cycle{
		{ID: "c2", GroupID: "g1", Number: 2, Status: models.CycleActive, RecipientID: "b"},
		{ID: "c1", GroupID: "g1", Number: 1, Status: models.CycleCompleted, RecipientID: "a"},
	}
	payments := []*models.Payment{
		paid("c1", "a", 50),
		paid("c1", "b", 50),
		paid("c2", "a", 50),
	}

	r := BuildReport(group, cycles, ms, payments)

	if r.TotalCollected != 150 {
		t.Errorf("Expected total 150, got %v", r.TotalCollected)
	}
	if r.CompletedCycles != 1 {
		t.Errorf("Expected 1 completed cycle, got %d", r.CompletedCycles)
	}
	if len(r.Cycles) != 2 || r.Cycles[0].Number != 1 {
		t.Fatalf("Expected cycles ordered by number, got %+v", r.Cycles)
	}
	if r.Cycles[0].CompletionPercentage != 100 || r.Cycles[1].CompletionPercentage != 50 {
		t.Errorf("Unexpected percentages: %d, %d", r.Cycles[0].CompletionPercentage, r.Cycles[1].CompletionPercentage)
	}
	if r.Members[0].TotalPaid != 100 || r.Members[0].PaidCycles != 2 || r.Members[0].Received != 1 {
		t.Errorf("Unexpected totals for a: %+v", r.Members[0])
	}
	if r.Members[1].TotalPaid != 50 || r.Members[1].Received != 1 {
		t.Errorf("Unexpected totals for b: %+v", r.Members[1])
	}
}
