package llm

import "context"

// MockGenerator is a canned implementation for tests and offline runs.
// It never calls an external model.
type MockGenerator struct {
	Resp *Response
	Err  error

	// LastRequest records the most recent request for assertions.
	LastRequest Request
}

// Generate implements Generator.
func (m *MockGenerator) Generate(_ context.Context, req Request) (*Response, error) {
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Resp, nil
}
