// Package role derives the access role and display name of a verified user.
package role

import (
	"strings"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

var displayNames = map[identity.Role]string{
	identity.RoleAdmin:   "Admin User",
	identity.RoleFaculty: "Dr. Sharma",
	identity.RoleStudent: "John Student",
}

// facultyMarkers are checked in order after "admin".
var facultyMarkers = []string{"faculty", "prof", "dr.", "teacher"}

// FromEmail guesses a role from substrings of the lower-cased e-mail.
// The first match wins, so "admin.prof@x" is an admin.
func FromEmail(email string) identity.Role {
	e := strings.ToLower(strings.TrimSpace(email))

	if strings.Contains(e, "admin") {
		return identity.RoleAdmin
	}

	for _, m := range facultyMarkers {
		if strings.Contains(e, m) {
			return identity.RoleFaculty
		}
	}

	return identity.RoleStudent
}

// DisplayName returns the fixed name shown for r. Unknown roles get the
// student name.
func DisplayName(r identity.Role) string {
	return displayNames[r.Ensure()]
}

// Resolve builds the identity record for a verified attempt. An explicit
// role selection always wins over the e-mail heuristic.
func Resolve(attempt entity.CredentialAttempt, at time.Time) identity.Record {
	r := FromEmail(attempt.Email)
	if attempt.HasSelection() {
		r = attempt.RoleSelection.Ensure()
	}

	return identity.Record{
		Role:      r,
		Name:      DisplayName(r),
		Email:     strings.TrimSpace(attempt.Email),
		LoginTime: at.UTC(),
	}
}
