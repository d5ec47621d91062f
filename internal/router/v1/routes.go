package v1

import (
	"github.com/evyataryagoni/iptracker/internal/handler"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures the /v1 endpoints
func SetupRoutes(trackerHandler *handler.TrackerHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/state", trackerHandler.State)
	r.Post("/search", trackerHandler.Search)
	r.Post("/sample", trackerHandler.Sample)

	return r
}
