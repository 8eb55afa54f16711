package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagecorpus"
	"github.com/fwojciec/pagecorpus/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where CorpusWriter is expected
	var _ pagecorpus.CorpusWriter = &mock.CorpusWriter{}
}

func TestCorpusWriter_WriteCorpus(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteCorpusFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		w := &mock.CorpusWriter{
			WriteCorpusFn: func(_ context.Context, corpus string) error {
				calledWith = corpus
				return nil
			},
		}

		err := w.WriteCorpus(context.Background(), "first\n\nsecond")

		require.NoError(t, err)
		assert.Equal(t, "first\n\nsecond", calledWith)
	})
}
