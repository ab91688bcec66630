package llm

import (
	"context"
	"errors"
	"fmt"
)

// CompletionClient is a minimal abstraction for text-completion LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrNotConfigured means no API key is present. This is a deployment state,
	// not a transport failure; callers may want to distinguish the two.
	ErrNotConfigured = errors.New("completion service is not configured")

	// ErrMalformedResponse means the service answered 2xx but the body carried
	// no usable message content.
	ErrMalformedResponse = errors.New("completion response has no message content")
)

// TransportError covers network failures, timeouts and non-2xx statuses.
type TransportError struct {
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("completion transport error: http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
