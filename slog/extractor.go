package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagecorpus"
)

// Ensure LoggingExtractor implements pagecorpus.Extractor.
var _ pagecorpus.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagecorpus.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagecorpus.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the fragment count.
func (e *LoggingExtractor) Extract(html string) (fragments []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"fragments", len(fragments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
