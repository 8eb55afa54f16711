// Package scrape runs the single-page pipeline: fetch, sanitize and
// extract, assemble, and persist.
package scrape

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fwojciec/pagecorpus"
)

// DefaultURL is the page scraped when no URL is given.
const DefaultURL = "https://mits.ac.in/university"

// Scraper turns one page into a corpus file.
type Scraper struct {
	Fetcher   pagecorpus.Fetcher
	Extractor pagecorpus.Extractor
	Writer    pagecorpus.CorpusWriter

	// Logger receives fetch failures. Nil disables logging.
	Logger *slog.Logger
}

// Result holds the outcome of a run.
type Result struct {
	URL       string
	Corpus    string
	Fragments int

	// Written is true when Corpus was persisted to Path.
	Written bool
	Path    string

	// FetchErr is set when the page could not be retrieved. The run then
	// produces an empty corpus and writes nothing.
	FetchErr error
}

// Run fetches url and writes its corpus. A fetch failure is not an error:
// it yields an empty Result with FetchErr set. An empty page or corpus is
// not written. Extraction and write errors are returned.
func (s *Scraper) Run(ctx context.Context, url string) (*Result, error) {
	result := &Result{URL: url, Path: s.Writer.Path()}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		var fetchErr *pagecorpus.FetchError
		if !errors.As(err, &fetchErr) {
			fetchErr = &pagecorpus.FetchError{URL: url, Err: err}
		}
		if s.Logger != nil {
			s.Logger.Error("fetch failed", "url", url, "status", fetchErr.StatusCode, "err", err)
		}
		result.FetchErr = fetchErr
		return result, nil
	}

	if strings.TrimSpace(html) == "" {
		return result, nil
	}

	fragments, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	result.Fragments = len(fragments)
	result.Corpus = pagecorpus.Assemble(fragments)

	if result.Corpus == "" {
		return result, nil
	}

	if err := s.Writer.WriteCorpus(ctx, result.Corpus); err != nil {
		return nil, err
	}
	result.Written = true

	return result, nil
}
