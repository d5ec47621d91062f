package limiter

import "sync"

// MockLimiter is a test double for the Limiter interface
type MockLimiter struct {
	mu sync.Mutex

	AllowResult bool
	AllowCalls  []string
	CloseCalled bool
	CloseError  error
}

// NewMockLimiter creates a mock that allows or denies every request
func NewMockLimiter(allowResult bool) *MockLimiter {
	return &MockLimiter{
		AllowResult: allowResult,
		AllowCalls:  []string{},
	}
}

func (m *MockLimiter) Allow(client string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AllowCalls = append(m.AllowCalls, client)
	return m.AllowResult
}

func (m *MockLimiter) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
