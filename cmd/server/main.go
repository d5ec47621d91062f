package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/evyataryagoni/iptracker/internal/config"
	"github.com/evyataryagoni/iptracker/internal/controller"
	"github.com/evyataryagoni/iptracker/internal/geo"
	"github.com/evyataryagoni/iptracker/internal/handler"
	"github.com/evyataryagoni/iptracker/internal/limiter"
	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/mapview"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/router"
	"github.com/evyataryagoni/iptracker/internal/state"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// @title           IP Address Tracker API
// @version         1.0
// @description     Look up the location of an IP address or domain and show it on a map
// @termsOfService  http://swagger.io/terms/

// @contact.name   Evyatar Yagoni
// @contact.email  evyatar@example.com

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.NewDefault().Fatal().Err(err).Msg("Failed to load configuration")
	}

	appLogger := setupLogger(appConfig)

	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	metricsCollector := metrics.New(prometheus.DefaultRegisterer)

	// Application root: one state, one map view and one controller for the whole run
	geoClient := geo.NewClient(appConfig.GeoAPIKey, metricsCollector, appLogger)
	appState := state.New()
	scene := mapview.NewScene(mapview.OpenStreetMap)
	mapView := mapview.NewView(scene, metricsCollector, appLogger)
	ctrl := controller.New(appState, geoClient, mapView, metricsCollector, appLogger)

	trackerHandler := handler.NewTrackerHandler(ctrl, scene)
	appRouter := router.SetupRouter(trackerHandler, rateLimiter, metricsCollector, prometheus.DefaultGatherer, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appConfig, appRouter, ctrl, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("Server failed")
	}
	appLogger.Info().Msg("Server stopped")
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().Msg("Starting IP Address Tracker...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("log_level", appConfig.LogLevel).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Int("rate_limit", appConfig.RateLimit).
		Int("rate_limit_window", appConfig.RateLimitWindow).
		Dur("shutdown_timeout", appConfig.ShutdownTimeout).
		Msg("Configuration loaded")

	if appConfig.UsesDevelopmentKey() {
		appLogger.Warn().Msg("GEO_API_KEY is not set, using the development key; provider lookups will be rejected")
	}

	return appLogger
}

// setupRateLimiter initializes the rate limiter
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	effectiveRate := appConfig.RequestsPerSecond()

	rateLimiter, err := limiter.New(limiter.Config{
		Type:              appConfig.RateLimitType,
		RequestsPerSecond: effectiveRate,
		RedisAddr:         appConfig.RedisAddr,
		RedisPassword:     appConfig.RedisPassword,
		RedisDB:           appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	log.Info().
		Str("type", appConfig.RateLimitType).
		Float64("requests_per_second", effectiveRate).
		Msg("Rate limiter initialized")

	return rateLimiter
}

// run serves HTTP and issues the startup lookup until ctx is cancelled
func run(ctx context.Context, appConfig *config.Config, appRouter http.Handler, ctrl *controller.Controller, log *logger.Logger) error {
	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: appRouter,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("page", "http://localhost:"+appConfig.Port+"/").
			Str("health_check", "http://localhost:"+appConfig.Port+"/health").
			Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
			Str("swagger", "http://localhost:"+appConfig.Port+"/swagger/index.html").
			Msg("Server is running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// the page shows the default record until this settles
	g.Go(func() error {
		ctrl.Startup(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
