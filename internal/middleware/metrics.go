package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Metrics records request count, latency and response size.
// The endpoint label is the matched chi route pattern so that arbitrary
// paths do not create new series.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			code := strconv.Itoa(status)
			endpoint := routePattern(r)

			m.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, code).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, endpoint, code).Observe(time.Since(start).Seconds())
			m.HTTPResponseSize.WithLabelValues(r.Method, endpoint, code).Observe(float64(ww.BytesWritten()))
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
