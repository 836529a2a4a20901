package middleware

import (
	"fmt"
	"net/http"

	"github.com/ulule/limiter/v3"
	limiterhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

// RateLimit throttles requests per client IP. formatted uses the limiter syntax
// "<limit>-<period>", e.g. "5-M" for five requests a minute.
func RateLimit(formatted string) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("middleware: rate limit %q: %w", formatted, err)
	}
	instance := limiter.New(memory.NewStore(), rate)
	mw := limiterhttp.NewMiddleware(instance,
		limiterhttp.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			Log(r.Context()).Warn("rate limit exceeded", zap.Int64("limit", rate.Limit))
			writeError(w, r, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		}),
		limiterhttp.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			Log(r.Context()).Error("rate limit check failed", zap.Error(err))
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}),
	)
	return mw.Handler, nil
}
