package event

import "time"

// IdentityVerifiedDestination is the subject/topic a verified login is announced on.
const IdentityVerifiedDestination string = "auth.identity.verified"

type IdentityVerifiedMessage struct {
	SessionID  string    `json:"session_id"`
	Role       string    `json:"role"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"verified_at"`
}
