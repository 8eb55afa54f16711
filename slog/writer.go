package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagecorpus"
)

// Ensure LoggingWriter implements pagecorpus.CorpusWriter.
var _ pagecorpus.CorpusWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a CorpusWriter with logging. The logged hash lets
// runs that produced identical output be spotted in the logs.
type LoggingWriter struct {
	next   pagecorpus.CorpusWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next pagecorpus.CorpusWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteCorpus delegates to the wrapped writer and logs the outcome.
func (w *LoggingWriter) WriteCorpus(ctx context.Context, corpus string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write corpus",
			"path", w.next.Path(),
			"bytes", len(corpus),
			"hash", fmt.Sprintf("%x", xxhash.Sum64String(corpus)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteCorpus(ctx, corpus)
}

// Path delegates to the wrapped writer.
func (w *LoggingWriter) Path() string {
	return w.next.Path()
}
