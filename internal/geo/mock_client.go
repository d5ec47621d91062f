package geo

import (
	"context"
	"sync"

	"github.com/evyataryagoni/iptracker/internal/models"
)

// LookupCall records one call to MockClient.Lookup
type LookupCall struct {
	Mode  Mode
	Value string
}

// MockClient is a test double for Client.
// Records are keyed by lookup value; Bare uses the empty key.
type MockClient struct {
	mu sync.Mutex

	Records map[string]models.LocationRecord
	Errors  map[string]error

	Calls []LookupCall
}

// NewMockClient creates a mock with no configured results
func NewMockClient() *MockClient {
	return &MockClient{
		Records: map[string]models.LocationRecord{},
		Errors:  map[string]error{},
	}
}

// Lookup returns the configured error or record for value.
// Mock mode behaves like the real client and returns DefaultRecord.
func (m *MockClient) Lookup(ctx context.Context, mode Mode, value string) (models.LocationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, LookupCall{Mode: mode, Value: value})

	if mode == Mock {
		return models.DefaultRecord(), nil
	}
	if err, ok := m.Errors[value]; ok {
		return models.LocationRecord{}, err
	}
	if record, ok := m.Records[value]; ok {
		return record, nil
	}
	return models.LocationRecord{}, &HTTPError{StatusCode: 422, Message: "Input correct IP address or domain."}
}

// CallCount returns the number of lookups issued
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
