package entity

import "time"

type SessionState int16

const (
	// SessionStateIdle means no code has been requested yet.
	SessionStateIdle SessionState = 0

	// SessionStateAwaitingInput means a code was sent and the widget accepts input.
	SessionStateAwaitingInput SessionState = 1

	// SessionStateSubmitting means a code is with the backend for comparison.
	SessionStateSubmitting SessionState = 2

	// SessionStateVerified means the code matched; the session is terminal.
	SessionStateVerified SessionState = 3

	// SessionStateFailed means the code did not match; input is cleared shortly.
	SessionStateFailed SessionState = 4

	// SessionStateExpired means the expiry timer ran out; only resend recovers.
	SessionStateExpired SessionState = 5
)

func (s SessionState) String() string {
	switch s {
	case SessionStateAwaitingInput:
		return "AwaitingInput"
	case SessionStateSubmitting:
		return "Submitting"
	case SessionStateVerified:
		return "Verified"
	case SessionStateFailed:
		return "Failed"
	case SessionStateExpired:
		return "Expired"
	default:
		return "Idle"
	}
}

// CodeSlot is one digit position of the code-entry widget.
type CodeSlot struct {
	Index  int    `json:"index"`
	Value  string `json:"value"`
	Filled bool   `json:"filled"`
}

// Countdown is a read-only view of one timer.
type Countdown struct {
	State     string        `json:"state"`
	Remaining time.Duration `json:"-"`
	Seconds   int           `json:"seconds"`
	Clock     string        `json:"clock"`
	Text      string        `json:"text"`
}

// Session is a point-in-time snapshot of the verification flow.
type Session struct {
	ID                string     `json:"id,omitempty"`
	State             string     `json:"state"`
	GatePassed        bool       `json:"gate_passed"`
	MaskedEmail       string     `json:"masked_email,omitempty"`
	Slots             []CodeSlot `json:"slots"`
	Focus             int        `json:"focus"`
	ExpiryDeadline    time.Time  `json:"expiry_deadline,omitzero"`
	ResendAvailableAt time.Time  `json:"resend_available_at,omitzero"`
	Expiry            Countdown  `json:"expiry"`
	Cooldown          Countdown  `json:"cooldown"`
	Progress          float64    `json:"progress"`
	Urgency           string     `json:"urgency"`
	CanVerify         bool       `json:"can_verify"`
	CanResend         bool       `json:"can_resend"`
	Redirect          string     `json:"redirect,omitempty"`
}
