package entity

import (
	"time"

	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

// Menu is a sidebar section.
type Menu string

const (
	MenuAdmin   Menu = "admin"
	MenuFaculty Menu = "faculty"
	MenuStudent Menu = "student"
)

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type QuickAction struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Dashboard is the role-specific home view of a logged-in user.
type Dashboard struct {
	Name         string        `json:"name"`
	Email        string        `json:"email,omitempty"`
	Role         identity.Role `json:"role"`
	RoleLabel    string        `json:"role_label"`
	Initials     string        `json:"initials"`
	LoginTime    time.Time     `json:"login_time,omitzero"`
	Home         string        `json:"home"`
	Menus        []Menu        `json:"menus"`
	Stats        []Stat        `json:"stats"`
	QuickActions []QuickAction `json:"quick_actions"`
}
