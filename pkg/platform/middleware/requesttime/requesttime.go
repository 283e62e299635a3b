// Package requesttime pins a single "now" per HTTP request so every dashboard
// builder served by that request agrees on today, the current month and the
// relative-time anchor.
package requesttime

import (
	"net/http"
	"time"

	"approvaldash/pkg/requestcontext"
)

// Middleware stamps the request context with the arrival time. A nil clock
// uses time.Now.
func Middleware(clock func() time.Time) func(http.Handler) http.Handler {
	if clock == nil {
		clock = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), clock())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
