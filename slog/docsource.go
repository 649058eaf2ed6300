// Package slog provides logging decorators for nixdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nixdoc"
)

// Ensure LoggingDocSource implements nixdoc.DocSource.
var _ nixdoc.DocSource = (*LoggingDocSource)(nil)

// LoggingDocSource wraps a DocSource with debug logging.
type LoggingDocSource struct {
	next   nixdoc.DocSource
	source nixdoc.Source
	logger *slog.Logger
}

// NewLoggingDocSource creates a new LoggingDocSource.
func NewLoggingDocSource(next nixdoc.DocSource, source nixdoc.Source, logger *slog.Logger) *LoggingDocSource {
	return &LoggingDocSource{next: next, source: source, logger: logger}
}

// AllKeys delegates to the wrapped source.
func (s *LoggingDocSource) AllKeys() []string {
	return s.next.AllKeys()
}

// Search delegates to the wrapped source and logs the operation.
func (s *LoggingDocSource) Search(query nixdoc.Lowercase) (entries []nixdoc.DocEntry) {
	defer func(begin time.Time) {
		s.logger.Debug("prefix search",
			"source", s.source,
			"query", query.String(),
			"hits", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query)
}

// SearchLiberal delegates to the wrapped source and logs the operation.
func (s *LoggingDocSource) SearchLiberal(query nixdoc.Lowercase) (entries []nixdoc.DocEntry) {
	defer func(begin time.Time) {
		s.logger.Debug("liberal search",
			"source", s.source,
			"query", query.String(),
			"hits", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchLiberal(query)
}

// Update delegates to the wrapped source and logs the operation.
func (s *LoggingDocSource) Update(ctx context.Context) (unchanged bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update",
			"source", s.source,
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Update(ctx)
}
