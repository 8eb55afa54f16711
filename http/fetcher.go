// Package http provides an HTTP-based implementation of pagecorpus.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagecorpus"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "pagecorpus/1.0"

// Ensure Fetcher implements pagecorpus.Fetcher at compile time.
var _ pagecorpus.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup with a single GET request. It does not
// execute JavaScript and never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns its body decoded to UTF-8.
// Network errors, timeouts and 4xx/5xx statuses are returned as
// *pagecorpus.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &pagecorpus.FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &pagecorpus.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	// Client and server errors fail the fetch; other statuses carry a body
	// worth parsing.
	if resp.StatusCode >= 400 {
		return "", &pagecorpus.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        pagecorpus.Errorf(pagecorpus.EFETCH, "unexpected status %s", resp.Status),
		}
	}

	// Decode legacy charsets so downstream stages always see UTF-8.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		// Empty body: a successful fetch of an empty page.
		return "", nil
	}
	if err != nil {
		return "", &pagecorpus.FetchError{URL: url, Err: err}
	}

	data, err := io.ReadAll(body)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &pagecorpus.FetchError{URL: url, Err: err}
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
