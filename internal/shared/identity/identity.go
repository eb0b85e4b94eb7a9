package identity

import (
	"errors"
	"strings"
	"time"
)

const (
	// StorageKey is the well-known key the resolved identity is stored under.
	StorageKey = "erp_user"

	// LoginPath is where the dashboard sends visitors without a usable identity.
	LoginPath = "index.html"
)

// ErrRecordIncomplete indicates a stored identity lacks its role or name.
var ErrRecordIncomplete = errors.New("identity: record is missing role or name")

// Role is the access role granted after a successful verification.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// ParseRole normalizes raw and reports whether it names a known role.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	return r, !r.IsUnknown()
}

func (r Role) String() string {
	return string(r)
}

// IsUnknown reports whether r is outside admin, faculty and student.
func (r Role) IsUnknown() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return false
	default:
		return true
	}
}

// Ensure returns r, or RoleStudent when r is unknown.
func (r Role) Ensure() Role {
	if r.IsUnknown() {
		return RoleStudent
	}
	return r
}

// Record is the persisted form of a resolved identity.
type Record struct {
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

// Validate reports ErrRecordIncomplete when role or name is empty.
func (r Record) Validate() error {
	if strings.TrimSpace(string(r.Role)) == "" || strings.TrimSpace(r.Name) == "" {
		return ErrRecordIncomplete
	}
	return nil
}

// RedirectTable maps each role to its dashboard path.
type RedirectTable map[Role]string

// DefaultRedirectTable returns the stock dashboard locations.
func DefaultRedirectTable() RedirectTable {
	return RedirectTable{
		RoleAdmin:   "pages/admin/dashboard.html",
		RoleFaculty: "pages/faculty/dashboard.html",
		RoleStudent: "pages/student/dashboard.html",
	}
}

// Lookup returns the path for role, falling back to the student entry for
// unrecognized roles.
func (t RedirectTable) Lookup(role Role) string {
	if path, ok := t[role]; ok && path != "" {
		return path
	}
	if path, ok := t[RoleStudent]; ok && path != "" {
		return path
	}
	return DefaultRedirectTable()[RoleStudent]
}
