package domain

import "strings"

type UserID int64

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole maps the backend spelling of a role onto Role. The API calls
// members "socio"; unknown roles are kept verbatim and never grant admin.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "socio", "member", "":
		return RoleMember
	case "admin":
		return RoleAdmin
	default:
		return Role(raw)
	}
}

type UserIdentity struct {
	ID    UserID
	Name  string
	Email string
	Role  Role
}

func (u UserIdentity) IsAdmin() bool {
	return u.Role == RoleAdmin
}
