package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
)

// ReadinessChecker reports whether the backing store can serve requests.
type ReadinessChecker interface {
	Ready() bool
}

// ReadinessGate rejects requests with 503 Service Unavailable while the
// backing store is not ready. The checker reads cached state, so the
// gate adds no I/O to the request path.
func ReadinessGate(checker ReadinessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.Ready() {
				slog.Warn("rejecting request, store not ready",
					"method", r.Method,
					"path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusServiceUnavailable,
					"Service is temporarily unavailable")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
