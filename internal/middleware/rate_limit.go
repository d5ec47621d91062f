package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/evyataryagoni/iptracker/internal/limiter"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/models"
)

// RateLimit rejects requests over the client's limit with 429.
// It runs after chi's RealIP, so RemoteAddr already reflects proxy headers.
// m may be nil.
func RateLimit(lim limiter.Limiter, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow(clientKey(r.RemoteAddr)) {
				if m != nil {
					m.RateLimitedTotal.Inc()
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Rate limit exceeded. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey strips the port from host:port addresses
func clientKey(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
