package entity

// Admin is a dashboard account as listed by the bot backend.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"created_at"`
}

// NormalizedRole folds the stored role label the same way session roles are.
func (a Admin) NormalizedRole() Role { return NormalizeRole(a.Role) }

// Deletable reports whether the row may offer a delete control at all.
// Super admins are never deletable from the dashboard.
func (a Admin) Deletable() bool { return a.NormalizedRole() != RoleSuperAdmin }

// NewAdmin is the registration payload.
type NewAdmin struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code"`
	Role      string `json:"role,omitempty"`
}
