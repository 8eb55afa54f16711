package pagecorpus

import (
	"context"
	"fmt"
)

// Fetcher retrieves the markup of a single page.
type Fetcher interface {
	// Fetch performs one GET request and returns the response body decoded
	// to UTF-8. Network failures, timeouts and non-success statuses are
	// reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// FetchError is returned when a page could not be retrieved.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
