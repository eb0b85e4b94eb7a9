package inbound

import "github.com/shandysiswandi/otpgate/internal/pkg/router"

type HTTPEndpoint struct {
	uc uc
}

// Get returns the dashboard of the stored identity.
// @Summary Get dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} router.successResponse{data=DashboardResponse} "Dashboard or login redirect"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *HTTPEndpoint) Get(r *router.Request) (any, error) {
	out, err := h.uc.Load(r.Context())
	if err != nil {
		return nil, err
	}

	if out.Dashboard == nil {
		return DashboardResponse{Redirect: out.Redirect}, nil
	}

	return DashboardResponse{Authenticated: true, Dashboard: out.Dashboard}, nil
}

// Logout forgets the stored identity.
// @Summary Logout
// @Tags Dashboard
// @Produce json
// @Success 200 {object} router.successResponse{data=LogoutResponse} "Login path"
// @Router /api/v1/dashboard/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	path, err := h.uc.Logout(r.Context())
	if err != nil {
		return nil, err
	}

	return LogoutResponse{Redirect: path}, nil
}
