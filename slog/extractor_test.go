package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/mock"
	pagemdslog "github.com/fwojciec/pagemd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs successful extraction", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*pagemd.Article, error) {
				return &pagemd.Article{Title: "T", ContentHTML: "<p>x</p>"}, nil
			},
		}

		ext := pagemdslog.NewLoggingExtractor(inner, logger)
		article, err := ext.Extract("<html></html>", "https://example.com/a")

		require.NoError(t, err)
		require.NotNil(t, article)
		output := buf.String()
		assert.Contains(t, output, "content extraction")
		assert.Contains(t, output, "url=https://example.com/a")
		assert.Contains(t, output, "article=true")
	})

	t.Run("logs fallback when no article is found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*pagemd.Article, error) {
				return nil, nil
			},
		}

		ext := pagemdslog.NewLoggingExtractor(inner, logger)
		article, err := ext.Extract("<html></html>", "https://example.com/a")

		require.NoError(t, err)
		assert.Nil(t, article)
		assert.Contains(t, buf.String(), "article=false")
	})
}
