package inbound

import (
	"net/http"

	"github.com/shandysiswandi/otpgate/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc, gt gateTrigger, stream eventStream) {
	end := &HTTPEndpoint{uc: uc, gate: gt, stream: stream}

	r.POST("/api/v1/auth/credentials", end.StartSession)

	r.GET("/api/v1/auth/session", end.GetSession)
	r.DELETE("/api/v1/auth/session", end.DeleteSession)
	r.PUT("/api/v1/auth/session/digits/:index", end.SetDigit)
	r.POST("/api/v1/auth/session/digits/:index/backspace", end.Backspace)
	r.POST("/api/v1/auth/session/digits/:index/navigate", end.Navigate)
	r.POST("/api/v1/auth/session/paste", end.Paste)
	r.POST("/api/v1/auth/session/verify", end.Verify)
	r.POST("/api/v1/auth/session/resend", end.Resend)

	r.POST("/api/v1/auth/gate/:event", end.GateEvent)

	r.GETRaw("/api/v1/auth/events", http.HandlerFunc(end.StreamEvents))
}
