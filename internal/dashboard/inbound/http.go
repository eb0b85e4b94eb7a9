package inbound

import "github.com/shandysiswandi/otpgate/internal/pkg/router"

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/dashboard", end.Get)
	r.POST("/api/v1/dashboard/logout", end.Logout)
}
