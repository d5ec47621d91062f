package middleware

import (
	"net/http"
	"time"

	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logging logs each request once it completes.
// 5xx responses log at error level and 4xx at warn.
func Logging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			reqLog := log.WithRequestID(middleware.GetReqID(r.Context()))

			var event *zerolog.Event
			switch {
			case ww.Status() >= 500:
				event = reqLog.Error()
			case ww.Status() >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration_ms", time.Since(start)).
				Msg("Request completed")
		})
	}
}
