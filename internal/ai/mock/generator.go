// Package mock provides a test double for ai.TextGenerator.
package mock

import (
	"context"
	"sync"
)

// MockGenerator returns Response (or the result of GenerateFunc when set)
// and records the prompts it was given.
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Response     string
	Err          error

	mu      sync.Mutex
	prompts []string
}

func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return m.Response, m.Err
}

// CallCount returns the number of Generate calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt received, in order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
