package mock

import (
	"context"

	"github.com/fwojciec/pagecorpus"
)

var _ pagecorpus.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter is a mock implementation of pagecorpus.CorpusWriter.
type CorpusWriter struct {
	WriteCorpusFn func(ctx context.Context, corpus string) error
	PathFn        func() string
}

func (w *CorpusWriter) WriteCorpus(ctx context.Context, corpus string) error {
	return w.WriteCorpusFn(ctx, corpus)
}

func (w *CorpusWriter) Path() string {
	return w.PathFn()
}
