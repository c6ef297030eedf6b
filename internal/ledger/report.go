package ledger

import (
	"sort"

	"github.com/mmynk/tontine/internal/models"
)

// CycleSummary is one row of the group report.
type CycleSummary struct {
	CycleID              string
	Number               int
	Status               models.CycleStatus
	RecipientID          string
	TotalCollected       float64
	CompletionPercentage int
	PaidCount            int
	MemberCount          int
}

// MemberTotal aggregates a member's contributions across all cycles.
type MemberTotal struct {
	MemberID   string
	Name       string
	Active     bool
	TotalPaid  float64
	PaidCycles int
	// Received is the number of cycles in which the member is the recipient.
	Received int
}

// Report summarizes a group's whole schedule.
type Report struct {
	GroupID         string
	TotalCollected  float64
	CompletedCycles int
	Cycles          []CycleSummary
	Members         []MemberTotal
}

// BuildReport aggregates every cycle's ledger and every member's payments.
// members includes inactive members so their history stays visible; each
// cycle's ledger still only counts active ones.
func BuildReport(group *models.Group, cycles []*models.Cycle, members []*models.Member, payments []*models.Payment) *Report {
	r := &Report{GroupID: group.ID}

	byCycle := make(map[string][]*models.Payment)
	for _, p := range payments {
		byCycle[p.CycleID] = append(byCycle[p.CycleID], p)
	}

	totals := make(map[string]*MemberTotal, len(members))
	for _, m := range members {
		totals[m.ID] = &MemberTotal{MemberID: m.ID, Name: m.Name, Active: m.Active}
	}

	sorted := append([]*models.Cycle(nil), cycles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	for _, c := range sorted {
		l := Build(c, group, members, byCycle[c.ID])
		r.Cycles = append(r.Cycles, CycleSummary{
			CycleID:              c.ID,
			Number:               c.Number,
			Status:               c.Status,
			RecipientID:          c.RecipientID,
			TotalCollected:       l.TotalCollected,
			CompletionPercentage: l.CompletionPercentage,
			PaidCount:            l.PaidCount,
			MemberCount:          l.MemberCount,
		})
		if c.Status == models.CycleCompleted {
			r.CompletedCycles++
		}
		if t, ok := totals[c.RecipientID]; ok {
			t.Received++
		}
	}

	for _, p := range payments {
		if p.Status != models.PaymentPaid {
			continue
		}
		r.TotalCollected += p.Amount
		if t, ok := totals[p.MemberID]; ok {
			t.TotalPaid += p.Amount
			t.PaidCycles++
		}
	}
	r.TotalCollected = Round2(r.TotalCollected)

	for _, m := range members {
		t := totals[m.ID]
		t.TotalPaid = Round2(t.TotalPaid)
		r.Members = append(r.Members, *t)
	}
	return r
}
