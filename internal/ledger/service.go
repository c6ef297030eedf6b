// Package ledger computes per-cycle contribution state and records
// contributions.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage"
)

// Store is the subset of storage the ledger reads and writes.
type Store interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	GetCycle(ctx context.Context, cycleID string) (*models.Cycle, error)
	ListCycles(ctx context.Context, groupID string) ([]*models.Cycle, error)
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	ListMembers(ctx context.Context, groupID string, activeOnly bool) ([]*models.Member, error)
	ListPayments(ctx context.Context, cycleID string) ([]*models.Payment, error)
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)
	UpsertPayment(ctx context.Context, payment *models.Payment) error
	ReversePayment(ctx context.Context, cycleID, memberID string) (bool, error)
}

// Service exposes ledger reads and payment writes gated by role.
type Service struct {
	store    Store
	resolver *roles.Resolver
	notifier notify.Notifier
}

// NewService creates a ledger Service. notifier may be nil, in which case
// reminders are only logged.
func NewService(store Store, resolver *roles.Resolver, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.NewLogNotifier(nil)
	}
	return &Service{store: store, resolver: resolver, notifier: notifier}
}

// GetLedger returns the contribution state of a cycle.
func (s *Service) GetLedger(ctx context.Context, caller roles.Caller, cycleID string) (*Ledger, error) {
	const op = "ledger.GetLedger"

	cycle, err := s.cycle(ctx, op, cycleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AnyMember...); err != nil {
		return nil, err
	}
	return s.build(ctx, op, cycle)
}

// RecordPayment marks a member's contribution to a cycle as paid.
// Re-recording overwrites the previous amount and date.
func (s *Service) RecordPayment(ctx context.Context, caller roles.Caller, cycleID, memberID string, amount float64, paidAt time.Time) (*models.Payment, error) {
	const op = "ledger.RecordPayment"

	cycle, err := s.cycle(ctx, op, cycleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AdminOrRecipient...); err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, errs.Validation(op, "amount", "must be greater than 0")
	}
	if paidAt.IsZero() {
		return nil, errs.Validation(op, "payment_date", "must be a valid date")
	}
	if err := s.checkMember(ctx, op, cycle.GroupID, memberID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		CycleID:  cycleID,
		MemberID: memberID,
		Amount:   amount,
		Status:   models.PaymentPaid,
		PaidAt:   paidAt,
	}
	if err := s.store.UpsertPayment(context.WithoutCancel(ctx), payment); err != nil {
		return nil, lookupError(op, "cycle", cycleID, err)
	}

	slog.Info("Payment recorded",
		"cycle_id", cycleID,
		"member_id", memberID,
		"amount", amount,
		"payment_id", payment.ID,
	)
	return payment, nil
}

// ReversePayment sets a member's contribution back to pending. It is a
// no-op when nothing was recorded; the return value reports whether a row
// existed.
func (s *Service) ReversePayment(ctx context.Context, caller roles.Caller, cycleID, memberID string) (bool, error) {
	const op = "ledger.ReversePayment"

	cycle, err := s.cycle(ctx, op, cycleID)
	if err != nil {
		return false, err
	}
	if _, err := s.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AdminOnly...); err != nil {
		return false, err
	}

	existed, err := s.store.ReversePayment(context.WithoutCancel(ctx), cycleID, memberID)
	if err != nil {
		return false, errs.Upstream(op, err)
	}

	slog.Info("Payment reversed", "cycle_id", cycleID, "member_id", memberID, "existed", existed)
	return existed, nil
}

// ReminderResult splits a reminder batch into the reminders the notifier
// delivered and the ones it did not.
type ReminderResult struct {
	Sent   []notify.Reminder
	Failed []notify.Reminder
}

// SendReminders passes every pending member of a cycle to the notifier.
// A batch the notifier fails entirely is an upstream error; a partial
// failure is reported through the result.
func (s *Service) SendReminders(ctx context.Context, caller roles.Caller, cycleID string) (*ReminderResult, error) {
	const op = "ledger.SendReminders"

	cycle, err := s.cycle(ctx, op, cycleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AdminOrRecipient...); err != nil {
		return nil, err
	}
	if cycle.Status == models.CycleCompleted {
		return nil, errs.State(op, "cycle %d is already completed", cycle.Number)
	}

	l, err := s.build(ctx, op, cycle)
	if err != nil {
		return nil, err
	}
	group, err := s.store.GetGroup(ctx, cycle.GroupID)
	if err != nil {
		return nil, lookupError(op, "group", cycle.GroupID, err)
	}

	var reminders []notify.Reminder
	for _, e := range l.Pending() {
		reminders = append(reminders, notify.Reminder{
			GroupID:     group.ID,
			GroupName:   group.Name,
			CycleID:     cycle.ID,
			CycleNumber: cycle.Number,
			DueDate:     cycle.EndDate,
			MemberID:    e.MemberID,
			Name:        e.MemberName,
			Email:       e.MemberEmail,
			Phone:       e.MemberPhone,
			Amount:      e.Amount,
		})
	}
	result := &ReminderResult{}
	if len(reminders) == 0 {
		return result, nil
	}

	sent, err := s.notifier.SendReminders(ctx, reminders)
	if err != nil && len(sent) == 0 {
		return nil, errs.Upstream(op, err)
	}
	result.Sent = sent
	delivered := make(map[string]bool, len(sent))
	for _, r := range sent {
		delivered[r.MemberID] = true
	}
	for _, r := range reminders {
		if !delivered[r.MemberID] {
			result.Failed = append(result.Failed, r)
		}
	}

	if err != nil {
		slog.Warn("Some reminders were not delivered", "cycle_id", cycleID, "sent", len(result.Sent), "failed", len(result.Failed), "error", err)
	} else {
		slog.Info("Reminders sent", "cycle_id", cycleID, "sent", len(result.Sent), "skipped", len(result.Failed))
	}
	return result, nil
}

// GroupReport summarizes every cycle and member of a group.
func (s *Service) GroupReport(ctx context.Context, caller roles.Caller, groupID string) (*Report, error) {
	const op = "ledger.GroupReport"

	if _, err := s.resolver.Require(ctx, op, caller, groupID, roles.AnyMember...); err != nil {
		return nil, err
	}

	var (
		group    *models.Group
		cycles   []*models.Cycle
		members  []*models.Member
		payments []*models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		group, err = s.store.GetGroup(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		cycles, err = s.store.ListCycles(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		members, err = s.store.ListMembers(gctx, groupID, false)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.store.ListPaymentsByGroup(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, lookupError(op, "group", groupID, err)
	}

	return BuildReport(group, cycles, members, payments), nil
}

func (s *Service) build(ctx context.Context, op string, cycle *models.Cycle) (*Ledger, error) {
	var (
		group    *models.Group
		members  []*models.Member
		payments []*models.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		group, err = s.store.GetGroup(gctx, cycle.GroupID)
		return err
	})
	g.Go(func() (err error) {
		members, err = s.store.ListMembers(gctx, cycle.GroupID, true)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.store.ListPayments(gctx, cycle.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, lookupError(op, "group", cycle.GroupID, err)
	}

	return Build(cycle, group, members, payments), nil
}

func (s *Service) cycle(ctx context.Context, op, cycleID string) (*models.Cycle, error) {
	cycle, err := s.store.GetCycle(ctx, cycleID)
	if err != nil {
		return nil, lookupError(op, "cycle", cycleID, err)
	}
	return cycle, nil
}

func (s *Service) checkMember(ctx context.Context, op, groupID, memberID string) error {
	member, err := s.store.GetMember(ctx, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(op, "member", memberID)
	}
	if err != nil {
		return errs.Upstream(op, err)
	}
	if member.GroupID != groupID || !member.Active {
		return errs.Validation(op, "member_id", "must reference an active member of the cycle's group")
	}
	return nil
}

func lookupError(op, entity, id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(op, entity, id)
	}
	return errs.Upstream(op, err)
}
