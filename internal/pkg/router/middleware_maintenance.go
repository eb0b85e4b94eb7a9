package router

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/shandysiswandi/otpgate/internal/pkg/config"
)

// middlewareMaintenance answers 503 for routes listed in
// app.maintenance.endpoints. The list is read per request so a config reload
// can take a route such as the verify endpoint offline without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg == nil || !slices.Contains(cfg.GetArray("app.maintenance.endpoints"), matchedRoutePath(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if after := cfg.GetInt("app.maintenance.retry_after_seconds"); after > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(after))
			}
			writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
		})
	}
}
