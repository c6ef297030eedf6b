package roles

import (
	"context"
	"log/slog"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
)

// Role sets required by domain operations.
var (
	// AdminOnly: create/activate/complete cycle, member management,
	// group edits, payment reversal.
	AdminOnly = []models.Role{models.RoleAdmin}

	// AdminOrRecipient: reminders and recording payments.
	AdminOrRecipient = []models.Role{models.RoleAdmin, models.RoleRecipient}

	// AnyMember: read operations.
	AnyMember = []models.Role{models.RoleAdmin, models.RoleRecipient, models.RoleMember}
)

// Require resolves the caller's role and returns an authorization error
// unless it is one of allowed. A missing group is reported as not found;
// any other lookup failure denies.
func (r *Resolver) Require(ctx context.Context, op string, caller Caller, groupID string, allowed ...models.Role) (models.Role, error) {
	role, err := r.ResolveStrict(ctx, caller, groupID)
	if errs.Is(err, errs.KindNotFound) {
		return models.RoleNone, err
	}
	if err != nil {
		slog.Warn("Role resolution failed, denying", "op", op, "group_id", groupID, "user_id", caller.UserID, "error", err)
		role = models.RoleNone
	}

	if !role.In(allowed...) {
		return role, errs.Unauthorized(op, "permission denied")
	}
	return role, nil
}
