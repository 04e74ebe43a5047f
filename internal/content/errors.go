package content

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound reports that no document matched the lookup key.
	ErrNotFound = errors.New("content: document not found")
	// ErrStoreUnavailable reports that no content store is configured.
	ErrStoreUnavailable = errors.New("content: store unavailable")
)

// RateLimitError captures throttled responses from the content store.
type RateLimitError struct {
	Store      string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "content store rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// StatusError captures any other non-success HTTP response.
type StatusError struct {
	Store      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Store, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Store, e.StatusCode, e.Body)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
