package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// parse or does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the backend call succeeded but carried no
// usable content.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "LLM returned an empty response"
}

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// rejected the credentials.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsGenerationFailure reports whether err is one of the expected failure
// modes of a generation call (transport, malformed, empty, truncated,
// rate limited). The UI collapses all of these into a single "generation
// failed, try again" notice; callers that need the distinction use
// errors.As directly.
func IsGenerationFailure(err error) bool {
	var (
		rl      *ErrRateLimit
		inv     *ErrInvalidResponse
		empty   *ErrEmptyResponse
		unavail *ErrProviderUnavailable
		maxTok  *ErrMaxTokensExceeded
	)
	return errors.As(err, &rl) ||
		errors.As(err, &inv) ||
		errors.As(err, &empty) ||
		errors.As(err, &unavail) ||
		errors.As(err, &maxTok)
}
