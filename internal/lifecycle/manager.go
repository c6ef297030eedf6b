// Package lifecycle advances a group's payout cycles through
// upcoming -> active -> completed while keeping at most one cycle active.
//
// Every transition is a compare-and-set on the stored status, so two
// callers racing on the same cycle cannot both succeed.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage"
)

// Store is the subset of storage the manager needs.
type Store interface {
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	GetCycle(ctx context.Context, cycleID string) (*models.Cycle, error)
	GetCycleByNumber(ctx context.Context, groupID string, number int) (*models.Cycle, error)
	ListCycles(ctx context.Context, groupID string) ([]*models.Cycle, error)
	CreateCycle(ctx context.Context, cycle *models.Cycle, newAmount float64) error
	UpdateCycleStatus(ctx context.Context, cycleID string, from, to models.CycleStatus) (bool, error)
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
}

// Observer is notified of every successful status transition.
type Observer interface {
	ObserveTransition(groupID string, from, to models.CycleStatus)
}

// Manager implements cycle creation and status transitions.
type Manager struct {
	store    Store
	resolver *roles.Resolver
	observer Observer
}

// NewManager creates a Manager. observer may be nil.
func NewManager(store Store, resolver *roles.Resolver, observer Observer) *Manager {
	return &Manager{store: store, resolver: resolver, observer: observer}
}

// CreateCycleParams are the inputs of CreateCycle.
type CreateCycleParams struct {
	GroupID     string
	RecipientID string
	PayoutDate  time.Time
	// AmountOverride, when set and different from the group amount,
	// replaces the group's amount as part of creating the cycle.
	AmountOverride *float64
}

// Completion is the outcome of CompleteCycle.
type Completion struct {
	Completed *models.Cycle
	// ActivatedNext is the cycle numbered Completed.Number+1 if it was
	// upcoming and got activated, nil otherwise.
	ActivatedNext *models.Cycle
	// NextMissingReason explains why ActivatedNext is nil.
	NextMissingReason string
}

// CreateCycle appends an upcoming cycle to the group's schedule.
func (m *Manager) CreateCycle(ctx context.Context, caller roles.Caller, p CreateCycleParams) (*models.Cycle, error) {
	const op = "lifecycle.CreateCycle"

	if _, err := m.resolver.Require(ctx, op, caller, p.GroupID, roles.AdminOnly...); err != nil {
		return nil, err
	}

	if p.PayoutDate.IsZero() {
		return nil, errs.Validation(op, "payout_date", "must be a valid date")
	}
	if p.RecipientID == "" {
		return nil, errs.Validation(op, "recipient_member_id", "is required")
	}

	recipient, err := m.store.GetMember(ctx, p.RecipientID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, errs.Upstream(op, err)
	}
	if err != nil || recipient.GroupID != p.GroupID || !recipient.Active {
		return nil, errs.Validation(op, "recipient_member_id", "must reference an active member of the group")
	}

	var newAmount float64
	if p.AmountOverride != nil {
		if *p.AmountOverride <= 0 {
			return nil, errs.Validation(op, "amount", "must be greater than 0")
		}
		group, err := m.store.GetGroup(ctx, p.GroupID)
		if err != nil {
			return nil, lookupError(op, "group", p.GroupID, err)
		}
		if *p.AmountOverride != group.Amount {
			newAmount = *p.AmountOverride
		}
	}

	cycle := &models.Cycle{
		GroupID:     p.GroupID,
		RecipientID: p.RecipientID,
		EndDate:     p.PayoutDate,
		Status:      models.CycleUpcoming,
	}
	err = m.store.CreateCycle(context.WithoutCancel(ctx), cycle, newAmount)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, errs.State(op, "another cycle was created concurrently; refresh and retry")
	}
	if err != nil {
		return nil, lookupError(op, "group", p.GroupID, err)
	}

	slog.Info("Cycle created",
		"group_id", cycle.GroupID,
		"cycle_id", cycle.ID,
		"cycle_number", cycle.Number,
		"amount_updated", newAmount > 0,
	)
	return cycle, nil
}

// ActivateCycle moves an upcoming cycle to active. It fails with a state
// error if the cycle is not upcoming or another cycle of the group is active.
func (m *Manager) ActivateCycle(ctx context.Context, caller roles.Caller, cycleID string) (*models.Cycle, error) {
	const op = "lifecycle.ActivateCycle"

	cycle, err := m.authorizedCycle(ctx, op, caller, cycleID)
	if err != nil {
		return nil, err
	}
	if cycle.Status != models.CycleUpcoming {
		return nil, errs.State(op, "cycle %d is %s, not %s", cycle.Number, cycle.Status, models.CycleUpcoming)
	}

	ok, err := m.transition(ctx, cycle, models.CycleActive)
	if err != nil {
		return nil, errs.Upstream(op, err)
	}
	if !ok {
		return nil, m.activationConflict(ctx, op, cycle)
	}

	return cycle, nil
}

// CompleteCycle marks an active cycle completed, regardless of how much
// was collected, and activates the next cycle by number if it is upcoming.
func (m *Manager) CompleteCycle(ctx context.Context, caller roles.Caller, cycleID string) (*Completion, error) {
	const op = "lifecycle.CompleteCycle"

	cycle, err := m.authorizedCycle(ctx, op, caller, cycleID)
	if err != nil {
		return nil, err
	}
	if cycle.Status != models.CycleActive {
		return nil, errs.State(op, "cycle %d is %s, not %s", cycle.Number, cycle.Status, models.CycleActive)
	}

	ok, err := m.transition(ctx, cycle, models.CycleCompleted)
	if err != nil {
		return nil, errs.Upstream(op, err)
	}
	if !ok {
		return nil, errs.State(op, "cycle %d is no longer %s", cycle.Number, models.CycleActive)
	}

	result := &Completion{Completed: cycle}

	next, reason, err := m.activateNext(ctx, cycle)
	if err != nil {
		// The completion is committed; report the failed follow-up.
		return result, errs.Upstream(op, fmt.Errorf("cycle %d completed but next activation failed: %w", cycle.Number, err))
	}
	result.ActivatedNext = next
	result.NextMissingReason = reason

	if next == nil {
		slog.Info("Cycle completed, no next cycle activated",
			"group_id", cycle.GroupID,
			"cycle_number", cycle.Number,
			"reason", reason,
		)
	} else {
		slog.Info("Cycle completed, next cycle activated",
			"group_id", cycle.GroupID,
			"cycle_number", cycle.Number,
			"next_cycle_id", next.ID,
		)
	}
	return result, nil
}

// ListCycles returns the group's cycles ordered by number.
func (m *Manager) ListCycles(ctx context.Context, caller roles.Caller, groupID string) ([]*models.Cycle, error) {
	const op = "lifecycle.ListCycles"

	if _, err := m.resolver.Require(ctx, op, caller, groupID, roles.AnyMember...); err != nil {
		return nil, err
	}
	cycles, err := m.store.ListCycles(ctx, groupID)
	if err != nil {
		return nil, errs.Upstream(op, err)
	}
	return cycles, nil
}

// GetCycle returns one cycle.
func (m *Manager) GetCycle(ctx context.Context, caller roles.Caller, cycleID string) (*models.Cycle, error) {
	const op = "lifecycle.GetCycle"

	cycle, err := m.store.GetCycle(ctx, cycleID)
	if err != nil {
		return nil, lookupError(op, "cycle", cycleID, err)
	}
	if _, err := m.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AnyMember...); err != nil {
		return nil, err
	}
	return cycle, nil
}

func (m *Manager) activateNext(ctx context.Context, completed *models.Cycle) (*models.Cycle, string, error) {
	next, err := m.store.GetCycleByNumber(ctx, completed.GroupID, completed.Number+1)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Sprintf("no cycle %d", completed.Number+1), nil
	}
	if err != nil {
		return nil, "", err
	}
	if next.Status != models.CycleUpcoming {
		return nil, fmt.Sprintf("cycle %d is %s", next.Number, next.Status), nil
	}

	ok, err := m.transition(ctx, next, models.CycleActive)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, fmt.Sprintf("cycle %d could not be activated", next.Number), nil
	}
	return next, "", nil
}

// transition performs the compare-and-set and updates cycle in place on
// success. It runs detached from ctx cancellation: once issued, a write
// completes or fails on its own.
func (m *Manager) transition(ctx context.Context, cycle *models.Cycle, to models.CycleStatus) (bool, error) {
	from := cycle.Status
	if !from.CanTransition(to) {
		return false, nil
	}

	ok, err := m.store.UpdateCycleStatus(context.WithoutCancel(ctx), cycle.ID, from, to)
	if err != nil || !ok {
		return ok, err
	}

	cycle.Status = to
	if m.observer != nil {
		m.observer.ObserveTransition(cycle.GroupID, from, to)
	}
	return true, nil
}

func (m *Manager) activationConflict(ctx context.Context, op string, cycle *models.Cycle) error {
	current, err := m.store.GetCycle(ctx, cycle.ID)
	if err != nil {
		return lookupError(op, "cycle", cycle.ID, err)
	}
	if current.Status != models.CycleUpcoming {
		return errs.State(op, "cycle %d is %s, not %s", current.Number, current.Status, models.CycleUpcoming)
	}
	return errs.State(op, "another cycle of the group is already active; complete it first")
}

func (m *Manager) authorizedCycle(ctx context.Context, op string, caller roles.Caller, cycleID string) (*models.Cycle, error) {
	cycle, err := m.store.GetCycle(ctx, cycleID)
	if err != nil {
		return nil, lookupError(op, "cycle", cycleID, err)
	}
	if _, err := m.resolver.Require(ctx, op, caller, cycle.GroupID, roles.AdminOnly...); err != nil {
		return nil, err
	}
	return cycle, nil
}

func lookupError(op, entity, id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(op, entity, id)
	}
	return errs.Upstream(op, err)
}
