package httpx

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds each request's context at the transport boundary so a
// stuck storage call cannot hold a connection open indefinitely.
func RequestTimeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
