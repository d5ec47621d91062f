package mapview

import (
	"sync"

	"github.com/evyataryagoni/iptracker/internal/models"
)

// MockEngine is a test double for the Engine interface.
// It records every call so tests can check how the view drives the engine.
type MockEngine struct {
	mu sync.Mutex

	InitializeCalls []models.Coordinates
	SetMarkerCalls  []models.Coordinates
	PanToCalls      []models.Coordinates
	Zoom            int

	// Markers counts distinct marker objects; the first SetMarker creates one
	Markers int
	// Marker and Center hold the current marker position and view center
	Marker models.Coordinates
	Center models.Coordinates
}

// NewMockEngine creates an empty mock engine
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Initialize(center models.Coordinates, zoom int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitializeCalls = append(m.InitializeCalls, center)
	m.Center = center
	m.Zoom = zoom
}

func (m *MockEngine) SetMarker(pos models.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetMarkerCalls = append(m.SetMarkerCalls, pos)
	if m.Markers == 0 {
		m.Markers = 1
	}
	m.Marker = pos
}

func (m *MockEngine) PanTo(pos models.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PanToCalls = append(m.PanToCalls, pos)
	m.Center = pos
}

// Calls returns the number of calls per method
func (m *MockEngine) Calls() (initialize, setMarker, panTo int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.InitializeCalls), len(m.SetMarkerCalls), len(m.PanToCalls)
}
