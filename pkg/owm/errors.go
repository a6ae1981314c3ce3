package owm

import (
	"errors"
	"fmt"
)

// Sentinel errors raised before any network activity. Match with errors.Is.
var (
	// ErrInvalidQuery means the place specifier matched no recognized shape.
	ErrInvalidQuery = errors.New("owm: query matches no recognized place specifier")

	// ErrInvalidArgument means a caller-supplied option is outside its
	// allowed domain (forecast horizon, history granularity or range,
	// UV precision, response mode).
	ErrInvalidArgument = errors.New("owm: argument outside the allowed domain")

	// ErrMissingCredential means an operation that strictly requires a
	// stored API key was invoked without one.
	ErrMissingCredential = errors.New("owm: operation requires a stored API key")
)

// ProviderError is a remote-side failure reported by OpenWeatherMap itself.
// The body decoded fine but carried the provider's error envelope.
type ProviderError struct {
	Message string
	Code    int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("owm: provider error: %s (code %d)", e.Message, e.Code)
}

// Is reports code equality so callers can match specific provider codes
// with errors.Is.
func (e *ProviderError) Is(target error) bool {
	t, ok := target.(*ProviderError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// MalformedResponseError means the body could not be decoded in any
// accepted format. Body carries the raw response for diagnostics.
type MalformedResponseError struct {
	Body   string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("owm: malformed response: %s: %q", e.Reason, body)
}
