package entity

import (
	"strings"

	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

// CredentialAttempt is what the login form submits.
type CredentialAttempt struct {
	Email         string
	Password      string
	RoleSelection identity.Role
}

// HasSelection reports whether the user picked a role explicitly.
func (c CredentialAttempt) HasSelection() bool {
	return c.RoleSelection != ""
}

// MaskEmail keeps the first character of the local part and the full domain,
// e.g. "john@uni.edu" becomes "j***@uni.edu".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	first := []rune(local)[0]
	return string(first) + "***@" + domain
}
