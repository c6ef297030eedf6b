package models

// Role is a caller's permission tier within a group. It is derived from
// group, member and cycle state and never persisted.
type Role string

const (
	RoleNone      Role = "none"
	RoleMember    Role = "member"
	RoleRecipient Role = "recipient"
	RoleAdmin     Role = "admin"
)

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}
