package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

// RateLimitByIP limits each client IP to requestLimit requests per window.
func RateLimitByIP(requestLimit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceeded(window)),
	)
}

// rateLimitExceeded writes a problem+json 429. httprate does not expose the
// reset time, so Retry-After is the full window.
func rateLimitExceeded(window time.Duration) http.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter)
		problem.TooManyRequests("Rate limit exceeded. Please try again later.").WithInstance(r.URL.Path).Write(w)
	}
}
