package aigen

import (
	"encoding/json"
	"fmt"
)

// ErrRateLimit indicates the provider rejected the call with a 429.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the output did not match the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
