package mapview

import (
	"sync"

	"github.com/evyataryagoni/iptracker/internal/models"
)

// TileLayer describes a raster tile source
type TileLayer struct {
	URLTemplate string
	MaxZoom     int
	Attribution string
}

// OpenStreetMap is the default tile layer
var OpenStreetMap = TileLayer{
	URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	MaxZoom:     19,
	Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
}

// Scene is the production Engine. It keeps the view, tile layer and marker
// as data that the page draws with its map library.
type Scene struct {
	mu          sync.RWMutex
	tiles       TileLayer
	initialized bool
	center      models.Coordinates
	zoom        int
	marker      *models.Coordinates
}

// NewScene creates an empty scene drawing tiles from layer
func NewScene(layer TileLayer) *Scene {
	return &Scene{tiles: layer}
}

func (s *Scene) Initialize(center models.Coordinates, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.center = center
	s.zoom = zoom
}

func (s *Scene) SetMarker(pos models.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.marker == nil {
		s.marker = &models.Coordinates{}
	}
	*s.marker = pos
}

func (s *Scene) PanTo(pos models.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = pos
}

// Snapshot returns the scene for the page
func (s *Scene) Snapshot() *models.MapScene {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scene := &models.MapScene{
		Initialized: s.initialized,
		TileURL:     s.tiles.URLTemplate,
		MaxZoom:     s.tiles.MaxZoom,
		Attribution: s.tiles.Attribution,
	}
	if s.initialized {
		center := s.center
		scene.Center = &center
		scene.Zoom = s.zoom
	}
	if s.marker != nil {
		marker := *s.marker
		scene.Marker = &marker
	}
	return scene
}
