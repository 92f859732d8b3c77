package aigen

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider returns canned responses in FIFO order and records every
// request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	if err := validateResponse(req.Schema, next.Content); err != nil {
		return nil, err
	}
	return &Response{Content: next.Content, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount is safe to read while requests are in flight.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
