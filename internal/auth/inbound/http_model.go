package inbound

import (
	"net/http"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
)

type StartSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SetDigitRequest struct {
	Value string `json:"value"`
}

type NavigateRequest struct {
	Direction string `json:"direction"`
}

type PasteRequest struct {
	Text string `json:"text"`
}

// SessionResponse is the session snapshot sent to the client.
type SessionResponse struct {
	entity.Session

	msg  string
	code int
}

func newSessionResponse(s entity.Session, msg string) SessionResponse {
	return SessionResponse{Session: s, msg: msg, code: http.StatusOK}
}

func newAcceptedResponse(s entity.Session, msg string) SessionResponse {
	return SessionResponse{Session: s, msg: msg, code: http.StatusAccepted}
}

func (s SessionResponse) Message() string {
	return s.msg
}

func (s SessionResponse) StatusCode() int {
	return s.code
}

type GateEventResponse struct {
	Event string `json:"event"`
}

func (GateEventResponse) Message() string {
	return "Security verification updated"
}
