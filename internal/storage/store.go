// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tontine/internal/models"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write would violate a uniqueness rule.
	ErrDuplicate = errors.New("duplicate")
)

// GroupStore persists groups.
type GroupStore interface {
	// CreateGroup persists a new group. ID and CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID. Returns ErrNotFound if missing.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns groups created by userID or having an active
	// member whose email equals email.
	ListGroupsForUser(ctx context.Context, userID, email string) ([]*models.Group, error)

	// UpdateGroup writes the mutable fields of a group. CreatedBy is never written.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group and, by cascade, its members, cycles and payments.
	DeleteGroup(ctx context.Context, groupID string) error
}

// MemberStore persists group members.
type MemberStore interface {
	// CreateMember persists a new member. Returns ErrDuplicate if the email
	// is already used in the group.
	CreateMember(ctx context.Context, member *models.Member) error

	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembers returns the members of a group ordered by creation.
	ListMembers(ctx context.Context, groupID string, activeOnly bool) ([]*models.Member, error)

	// FindActiveMemberByEmail returns the active member of groupID with the
	// exact email. Returns ErrNotFound if none.
	FindActiveMemberByEmail(ctx context.Context, groupID, email string) (*models.Member, error)

	UpdateMember(ctx context.Context, member *models.Member) error

	DeleteMember(ctx context.Context, memberID string) error
}

// CycleStore persists cycles.
type CycleStore interface {
	// CreateCycle assigns the next cycle number of the group and persists the
	// cycle. A zero StartDate defaults to the previous cycle's end date, or
	// the group's start date for the first cycle. If newAmount > 0 the
	// group's amount is set to it in the same transaction.
	CreateCycle(ctx context.Context, cycle *models.Cycle, newAmount float64) error

	GetCycle(ctx context.Context, cycleID string) (*models.Cycle, error)

	// GetCycleByNumber returns ErrNotFound if the group has no cycle with that number.
	GetCycleByNumber(ctx context.Context, groupID string, number int) (*models.Cycle, error)

	// GetActiveCycle returns ErrNotFound if the group has no active cycle.
	GetActiveCycle(ctx context.Context, groupID string) (*models.Cycle, error)

	// ListCycles returns the cycles of a group ordered by number.
	ListCycles(ctx context.Context, groupID string) ([]*models.Cycle, error)

	// UpdateCycleStatus moves a cycle from one status to another only if its
	// current status is from. When to is active the update additionally
	// requires that no other cycle of the group is active. Reports whether
	// the row was updated.
	UpdateCycleStatus(ctx context.Context, cycleID string, from, to models.CycleStatus) (bool, error)
}

// PaymentStore persists contributions.
type PaymentStore interface {
	ListPayments(ctx context.Context, cycleID string) ([]*models.Payment, error)

	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)

	// UpsertPayment inserts or overwrites the payment for (CycleID, MemberID).
	UpsertPayment(ctx context.Context, payment *models.Payment) error

	// ReversePayment sets the payment for (cycleID, memberID) back to pending
	// and clears its date. Reports whether a row existed.
	ReversePayment(ctx context.Context, cycleID, memberID string) (bool, error)
}

// Store defines the interface for tontine storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the domain layer.
type Store interface {
	GroupStore
	MemberStore
	CycleStore
	PaymentStore

	// Close releases any resources held by the store.
	Close() error
}
