package entity

import "strings"

// Role is the effective authorization role of the current session.
// It is derived from an unverified token claim, so every check built on it
// is a UI affordance only; the backend remains the authority.
type Role string

const (
	RoleUnauthenticated Role = "unauthenticated"
	RoleViewer          Role = "viewer"
	RoleEditor          Role = "editor"
	RoleSuperAdmin      Role = "super_admin"
)

// legacy labels still issued by older tokens
var roleAliases = map[string]Role{
	"admin": RoleEditor,
}

// NormalizeRole trims and lowercases raw, folds legacy aliases and maps
// anything unknown to RoleUnauthenticated.
func NormalizeRole(raw string) Role {
	r := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := roleAliases[r]; ok {
		return alias
	}
	switch Role(r) {
	case RoleViewer, RoleEditor, RoleSuperAdmin:
		return Role(r)
	}
	return RoleUnauthenticated
}

func (r Role) String() string { return string(r) }

func (r Role) IsAuthenticated() bool { return r != RoleUnauthenticated && r != "" }

// CanManageContent gates the admin list, clinics and quizzes.
func (r Role) CanManageContent() bool { return r == RoleEditor || r == RoleSuperAdmin }

// CanManageAdmins gates creating and deleting admin accounts.
func (r Role) CanManageAdmins() bool { return r == RoleSuperAdmin }

func (r Role) CanUpload() bool { return r == RoleEditor || r == RoleSuperAdmin }

// Label is the human form used in badges.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleEditor:
		return "Editor"
	case RoleViewer:
		return "Viewer"
	}
	return "Guest"
}
