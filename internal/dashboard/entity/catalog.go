package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

// MenusFor lists the sidebar sections shown to role. Admins also see the
// faculty section; unknown roles see none.
func MenusFor(role identity.Role) []Menu {
	switch role {
	case identity.RoleAdmin:
		return []Menu{MenuAdmin, MenuFaculty}
	case identity.RoleFaculty:
		return []Menu{MenuFaculty}
	case identity.RoleStudent:
		return []Menu{MenuStudent}
	default:
		return []Menu{}
	}
}

// StatsFor returns the four headline figures for role, student by default.
func StatsFor(role identity.Role) []Stat {
	switch role {
	case identity.RoleAdmin:
		return []Stat{
			{Value: "2,456", Label: "Total Users"},
			{Value: "45", Label: "Departments"},
			{Value: "128", Label: "Total Courses"},
			{Value: "8", Label: "System Alerts"},
		}
	case identity.RoleFaculty:
		return []Stat{
			{Value: "248", Label: "Total Students"},
			{Value: "94.2%", Label: "Attendance Rate"},
			{Value: "6", Label: "Active Courses"},
			{Value: "12", Label: "Pending Tasks"},
		}
	default:
		return []Stat{
			{Value: "92%", Label: "My Attendance"},
			{Value: "8.5", Label: "Current CGPA"},
			{Value: "5", Label: "Enrolled Courses"},
			{Value: "3", Label: "Pending Tasks"},
		}
	}
}

// QuickActionsFor returns the shortcut cards for role, student by default.
func QuickActionsFor(role identity.Role) []QuickAction {
	switch role {
	case identity.RoleAdmin:
		return []QuickAction{
			{Label: "Add User", Icon: "bi-person-plus-fill"},
			{Label: "Departments", Icon: "bi-building"},
			{Label: "Reports", Icon: "bi-file-earmark-bar-graph"},
			{Label: "Settings", Icon: "bi-gear-fill"},
		}
	case identity.RoleFaculty:
		return []QuickAction{
			{Label: "Mark Attendance", Icon: "bi-calendar-check-fill"},
			{Label: "Enter Grades", Icon: "bi-pencil-square"},
			{Label: "Create Assignment", Icon: "bi-file-earmark-plus"},
			{Label: "Announcements", Icon: "bi-megaphone-fill"},
		}
	default:
		return []QuickAction{
			{Label: "View Attendance", Icon: "bi-calendar-check"},
			{Label: "View Grades", Icon: "bi-award-fill"},
			{Label: "Pay Fees", Icon: "bi-credit-card-fill"},
			{Label: "Download ID", Icon: "bi-person-badge-fill"},
		}
	}
}

// Initials takes the first letter of the first and last word of name,
// upper-cased. An empty name yields "U".
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "U"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
