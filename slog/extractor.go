package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingExtractor implements pagemd.Extractor.
var _ pagemd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and records extraction outcomes.
// Extraction failures are swallowed by the pipeline as a fallback signal,
// so this decorator is where they become visible.
type LoggingExtractor struct {
	next   pagemd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, sourceURL string) (article *pagemd.Article, err error) {
	defer func(begin time.Time) {
		e.logger.Info("content extraction",
			"url", sourceURL,
			"article", article != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
