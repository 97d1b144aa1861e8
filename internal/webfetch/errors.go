package webfetch

import (
	"fmt"
	"time"
)

// InvalidURLError is returned before any network I/O when the URL does not
// parse as an absolute http or https URL. This is a caller error.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %q (must be absolute http or https)", e.URL)
}

// TimeoutError is returned when the fetch exceeded its deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("fetch timed out after %s: %s", e.Timeout, e.URL)
}

// StatusError is returned for a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch failed with HTTP status %d: %s", e.StatusCode, e.URL)
}

// NetworkError wraps DNS and connection failures.
type NetworkError struct {
	URL   string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
