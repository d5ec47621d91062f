package state

import (
	"sync"

	"github.com/evyataryagoni/iptracker/internal/models"
)

// Ticket identifies one lookup. Tickets are issued in increasing order.
type Ticket uint64

// AppState is the single source of truth for the displayed record and status line.
//
// Writes carry the ticket of the lookup that produced them. A write whose
// ticket is older than the last settled one is dropped, so the most recently
// issued lookup wins no matter in which order lookups settle.
type AppState struct {
	mu      sync.RWMutex
	record  models.LocationRecord
	status  string
	issued  Ticket
	settled Ticket
}

// New creates the state holding the default record and an empty status
func New() *AppState {
	return &AppState{record: models.DefaultRecord()}
}

// Begin issues the ticket for a new lookup
func (s *AppState) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Apply replaces all location fields and clears the status.
// It returns false, leaving the state untouched, if t is stale.
func (s *AppState) Apply(t Ticket, record models.LocationRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t < s.settled {
		return false
	}
	s.settled = t
	s.record = record
	s.status = ""
	return true
}

// SetStatus sets the status line without touching the location fields.
// It returns false if t is stale.
func (s *AppState) SetStatus(t Ticket, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t < s.settled {
		return false
	}
	s.settled = t
	s.status = msg
	return true
}

// ClearStatus empties the status line before a new lookup goes out
func (s *AppState) ClearStatus() {
	s.mu.Lock()
	s.status = ""
	s.mu.Unlock()
}

// Record returns the current location record
func (s *AppState) Record() models.LocationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Status returns the current status line
func (s *AppState) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns a consistent copy of the record and status
func (s *AppState) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Record:  s.record,
		Status:  s.status,
		Display: s.record.Display(),
	}
}
