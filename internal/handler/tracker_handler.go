package handler

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/evyataryagoni/iptracker/internal/controller"
	"github.com/evyataryagoni/iptracker/internal/models"
)

//go:embed web/index.html
var indexPage []byte

// SceneSource provides the map scene drawn by the page
type SceneSource interface {
	Snapshot() *models.MapScene
}

// TrackerHandler exposes the controller's user actions over HTTP.
// A failed lookup is not an HTTP error: it shows up in the snapshot's status.
type TrackerHandler struct {
	controller *controller.Controller
	scene      SceneSource
}

// NewTrackerHandler creates the handler
func NewTrackerHandler(ctrl *controller.Controller, scene SceneSource) *TrackerHandler {
	return &TrackerHandler{
		controller: ctrl,
		scene:      scene,
	}
}

// Index serves the single page
func (h *TrackerHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

// State handles GET /v1/state
// @Summary      Current lookup state
// @Description  Returns the displayed record, the status line and the map scene
// @Tags         Tracker
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      429  {object}  models.ErrorResponse  "Rate limit exceeded"
// @Router       /v1/state [get]
func (h *TrackerHandler) State(w http.ResponseWriter, r *http.Request) {
	h.respondSnapshot(w)
}

// Search handles POST /v1/search
// @Summary      Look up an IP address or domain
// @Description  Validates the query, resolves it and returns the new state. Validation and lookup failures are reported in the status field.
// @Tags         Tracker
// @Accept       json
// @Produce      json
// @Param        request  body      models.SearchRequest  true  "Search query"
// @Success      200      {object}  models.Snapshot
// @Failure      400      {object}  models.ErrorResponse  "Malformed request body"
// @Failure      429      {object}  models.ErrorResponse  "Rate limit exceeded"
// @Router       /v1/search [post]
func (h *TrackerHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.controller.Search(lookupContext(r), req.Query)
	h.respondSnapshot(w)
}

// Sample handles POST /v1/sample
// @Summary      Load sample data
// @Description  Shows the built-in sample record without calling the provider
// @Tags         Tracker
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      429  {object}  models.ErrorResponse  "Rate limit exceeded"
// @Router       /v1/sample [post]
func (h *TrackerHandler) Sample(w http.ResponseWriter, r *http.Request) {
	h.controller.LoadSample(lookupContext(r))
	h.respondSnapshot(w)
}

// lookupContext detaches a lookup from its request. The result lands in the
// shared state, so a client hanging up must not turn it into a network error
// that every other client sees.
func lookupContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (h *TrackerHandler) respondSnapshot(w http.ResponseWriter) {
	snapshot := h.controller.Snapshot()
	snapshot.Map = h.scene.Snapshot()
	h.respondJSON(w, http.StatusOK, snapshot)
}

// respondJSON writes a JSON response with the given status code
func (h *TrackerHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response with consistent formatting
func (h *TrackerHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Error: message})
}
