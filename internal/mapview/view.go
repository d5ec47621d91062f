package mapview

import (
	"sync"

	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/models"
)

// DefaultZoom is the zoom level the view is created with
const DefaultZoom = 13

// Engine is the map rendering capability behind a View
type Engine interface {
	// Initialize creates the view centered on center and attaches the tile layer
	Initialize(center models.Coordinates, zoom int)
	// SetMarker places the marker, creating it on first use
	SetMarker(pos models.Coordinates)
	// PanTo recenters the view
	PanTo(pos models.Coordinates)
}

// View owns the single map view and marker of the process.
//
// The first Update initializes the engine and places the marker. Later
// updates move the marker and pan; the view is never recreated.
type View struct {
	mu          sync.Mutex
	engine      Engine
	zoom        int
	initialized bool
	center      models.Coordinates
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

// NewView creates an uninitialized view over engine. m and log may be nil.
func NewView(engine Engine, m *metrics.Metrics, log *logger.Logger) *View {
	if log == nil {
		log = logger.NewDefault()
	}
	return &View{
		engine:  engine,
		zoom:    DefaultZoom,
		metrics: m,
		logger:  log.WithComponent("MapView"),
	}
}

// Update shows (lat, lng) on the map
func (v *View) Update(lat, lng float64) {
	pos := models.Coordinates{Lat: lat, Lng: lng}

	v.mu.Lock()
	defer v.mu.Unlock()

	action := "move"
	if !v.initialized {
		v.engine.Initialize(pos, v.zoom)
		v.engine.SetMarker(pos)
		v.initialized = true
		action = "init"
	} else {
		v.engine.SetMarker(pos)
		v.engine.PanTo(pos)
	}
	v.center = pos

	v.logger.Debug().
		Str("action", action).
		Float64("lat", lat).
		Float64("lng", lng).
		Msg("Map updated")
	if v.metrics != nil {
		v.metrics.MapUpdatesTotal.WithLabelValues(action).Inc()
	}
}

// Initialized reports whether the view has been created
func (v *View) Initialized() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.initialized
}

// Center returns the current view center and whether the view exists
func (v *View) Center() (models.Coordinates, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.center, v.initialized
}
