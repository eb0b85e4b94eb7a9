package inbound

import "github.com/shandysiswandi/otpgate/internal/dashboard/entity"

// DashboardResponse either carries the dashboard or tells the client where
// to go instead.
type DashboardResponse struct {
	Authenticated bool              `json:"authenticated"`
	Redirect      string            `json:"redirect,omitempty"`
	Dashboard     *entity.Dashboard `json:"dashboard,omitempty"`
}

func (r DashboardResponse) Message() string {
	if !r.Authenticated {
		return "Login required"
	}
	return "Dashboard loaded"
}

type LogoutResponse struct {
	Redirect string `json:"redirect"`
}

func (LogoutResponse) Message() string {
	return "Logged out"
}
