package router

import (
	"net/http"

	_ "github.com/evyataryagoni/iptracker/docs" // Swagger docs
	"github.com/evyataryagoni/iptracker/internal/handler"
	"github.com/evyataryagoni/iptracker/internal/limiter"
	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	custommiddleware "github.com/evyataryagoni/iptracker/internal/middleware"
	v1 "github.com/evyataryagoni/iptracker/internal/router/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupRouter creates the chi router with all middleware and routes.
// gatherer backs /metrics and should be the registry m was created with.
func SetupRouter(trackerHandler *handler.TrackerHandler, rateLimiter limiter.Limiter, m *metrics.Metrics, gatherer prometheus.Gatherer, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// RequestID first so every later middleware can log it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logging(log))
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.RateLimit(rateLimiter, m))
	r.Use(custommiddleware.Metrics(m))

	r.Get("/", trackerHandler.Index)
	r.Mount("/v1", v1.SetupRoutes(trackerHandler))

	r.Get("/health", healthCheckHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// http://localhost:3000/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
