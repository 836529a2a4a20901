package middleware

import (
	"net/http"
	"time"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/observability"
)

// Metrics records request count and latency per chi route pattern.
func Metrics(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := NewResponseRecorder(w)
			next.ServeHTTP(rw, r)
			m.ObserveHTTP(routePattern(r), r.Method, rw.Status(), time.Since(start))
		})
	}
}
