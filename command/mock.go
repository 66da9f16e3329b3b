package command

import (
	"context"
	"sync"
)

// MockCommander is a mock implementation of Commander for testing.
type MockCommander struct {
	mu          sync.Mutex
	ManageFunc  func(ctx context.Context, args ...string) ([]byte, error)
	SystemFunc  func(ctx context.Context, name string, args ...string) ([]byte, error)
	ManageCalls []ManageCall
	SystemCalls []SystemCall
}

// ManageCall records the parameters of a single Manage call.
type ManageCall struct {
	Args []string
}

// SystemCall records the parameters of a single System call.
type SystemCall struct {
	Name string
	Args []string
}

// NewMockCommander creates a new MockCommander with an empty call history.
func NewMockCommander() *MockCommander {
	return &MockCommander{
		ManageCalls: make([]ManageCall, 0),
		SystemCalls: make([]SystemCall, 0),
	}
}

// Manage implements the Commander interface.
// It records the call parameters, then:
// - If ManageFunc is set, calls and returns it
// - Otherwise, returns empty output and nil (success)
func (m *MockCommander) Manage(ctx context.Context, args ...string) ([]byte, error) {
	m.mu.Lock()
	m.ManageCalls = append(m.ManageCalls, ManageCall{Args: args})
	m.mu.Unlock()

	if m.ManageFunc != nil {
		return m.ManageFunc(ctx, args...)
	}

	return nil, nil
}

// System implements the Commander interface.
// It records the call parameters, then:
// - If SystemFunc is set, calls and returns it
// - Otherwise, returns empty output and nil (success)
func (m *MockCommander) System(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	m.SystemCalls = append(m.SystemCalls, SystemCall{Name: name, Args: args})
	m.mu.Unlock()

	if m.SystemFunc != nil {
		return m.SystemFunc(ctx, name, args...)
	}

	return nil, nil
}

// Reset clears the call history.
func (m *MockCommander) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ManageCalls = make([]ManageCall, 0)
	m.SystemCalls = make([]SystemCall, 0)
}
