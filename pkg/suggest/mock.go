package suggest

import (
	"context"
	"errors"
	"sync"
)

// MockClient is a CompletionClient returning canned responses in order.
// It is intended for tests and offline usage.
type MockClient struct {
	mu        sync.Mutex
	responses []string
	next      int
}

// NewMockClient builds a MockClient that replays responses in order.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// Complete returns the next canned response, or an error once exhausted.
func (c *MockClient) Complete(context.Context, string, string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= len(c.responses) {
		return "", errors.New("mock client: no responses left")
	}
	resp := c.responses[c.next]
	c.next++
	return resp, nil
}
