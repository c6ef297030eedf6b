// Package roles resolves a caller's permission tier within a group and
// gates domain operations on it.
package roles

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/storage"
)

// Caller identifies the user on whose behalf an operation runs. Both values
// come from the identity service; the resolver never reads ambient state.
type Caller struct {
	UserID string
	Email  string
}

// Lookup is the subset of storage the resolver reads.
type Lookup interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	GetActiveCycle(ctx context.Context, groupID string) (*models.Cycle, error)
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	FindActiveMemberByEmail(ctx context.Context, groupID, email string) (*models.Member, error)
}

// Resolver computes roles from current group, member and cycle state.
type Resolver struct {
	lookup Lookup
	cache  *cache
}

// NewResolver creates a Resolver without caching.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// NewCachingResolver creates a Resolver that caches roles per (user, group).
// Callers must feed every change hint to HandleChange.
func NewCachingResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup, cache: newCache()}
}

// Resolve returns the caller's role in groupID, or RoleNone if any lookup fails.
func (r *Resolver) Resolve(ctx context.Context, caller Caller, groupID string) models.Role {
	role, err := r.ResolveStrict(ctx, caller, groupID)
	if err != nil {
		slog.Warn("Role resolution failed, denying", "group_id", groupID, "user_id", caller.UserID, "error", err)
		return models.RoleNone
	}
	return role
}

// ResolveStrict is Resolve but also returns the lookup failure. The role is
// RoleNone whenever err is non-nil.
func (r *Resolver) ResolveStrict(ctx context.Context, caller Caller, groupID string) (models.Role, error) {
	if r.cache != nil {
		if role, ok := r.cache.get(groupID, caller); ok {
			return role, nil
		}
	}

	var gen uint64
	if r.cache != nil {
		gen = r.cache.generation(groupID)
	}

	role, err := r.resolve(ctx, caller, groupID)
	if err != nil {
		return models.RoleNone, err
	}

	if r.cache != nil {
		r.cache.put(groupID, caller, role, gen)
	}
	return role, nil
}

func (r *Resolver) resolve(ctx context.Context, caller Caller, groupID string) (models.Role, error) {
	const op = "roles.Resolve"

	group, err := r.lookup.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.RoleNone, errs.NotFound(op, "group", groupID)
	}
	if err != nil {
		return models.RoleNone, errs.Upstream(op, err)
	}

	// Creator is admin regardless of any other state
	if caller.UserID != "" && group.CreatedBy == caller.UserID {
		return models.RoleAdmin, nil
	}
	if caller.Email == "" {
		return models.RoleNone, nil
	}

	isRecipient, err := r.isActiveRecipient(ctx, caller.Email, groupID)
	if err != nil {
		return models.RoleNone, errs.Upstream(op, err)
	}
	if isRecipient {
		return models.RoleRecipient, nil
	}

	_, err = r.lookup.FindActiveMemberByEmail(ctx, groupID, caller.Email)
	if errors.Is(err, storage.ErrNotFound) {
		return models.RoleNone, nil
	}
	if err != nil {
		return models.RoleNone, errs.Upstream(op, err)
	}
	return models.RoleMember, nil
}

func (r *Resolver) isActiveRecipient(ctx context.Context, email, groupID string) (bool, error) {
	cycle, err := r.lookup.GetActiveCycle(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if cycle.RecipientID == "" {
		return false, nil
	}

	recipient, err := r.lookup.GetMember(ctx, cycle.RecipientID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return recipient.Active && recipient.Email == email, nil
}

// Invalidate drops cached roles for groupID.
func (r *Resolver) Invalidate(groupID string) {
	if r.cache != nil {
		r.cache.invalidate(groupID)
	}
}

// HandleChange invalidates cached roles for the group a change belongs to.
func (r *Resolver) HandleChange(change storage.Change) {
	r.Invalidate(change.GroupID)
}
