package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/entaudit"
)

// Ensure LoggingExtractor implements entaudit.EntityExtractor.
var _ entaudit.EntityExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an EntityExtractor with logging.
type LoggingExtractor struct {
	next   entaudit.EntityExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next entaudit.EntityExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractEntities logs the input size and detected entity count and
// delegates to the wrapped extractor.
func (e *LoggingExtractor) ExtractEntities(ctx context.Context, text string) (entities []entaudit.RawEntity, err error) {
	defer func(begin time.Time) {
		e.logger.Info("entity extraction",
			"chars", len(text),
			"entities", len(entities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractEntities(ctx, text)
}
