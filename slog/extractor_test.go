package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagecorpus/mock"
	pcslog "github.com/fwojciec/pagecorpus/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs fragment count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]string, error) {
				return []string{"one fragment", "two fragment"}, nil
			},
		}

		extractor := pcslog.NewLoggingExtractor(inner, logger)
		fragments, err := extractor.Extract("<p>html</p>")

		require.NoError(t, err)
		assert.Len(t, fragments, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "bytes=11")
		assert.Contains(t, output, "fragments=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) ([]string, error) {
				return nil, errors.New("parse error")
			},
		}

		extractor := pcslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<p>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse error\"")
	})
}
