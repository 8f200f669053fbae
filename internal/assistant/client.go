package assistant

import "context"

// Request is a single stateless completion call
type Request struct {
	System  string
	Message string
}

// Client completes a user message under a system instruction
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
