// Package slog provides logging decorators for core interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/aleksw/profgen"
)

// Ensure LoggingExtractor implements profgen.Extractor.
var _ profgen.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of which strategy
// won each field, useful when page markup drifts.
type LoggingExtractor struct {
	next   profgen.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next profgen.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractField logs the winning strategy and delegates.
func (e *LoggingExtractor) ExtractField(html string, spec profgen.FieldSpec) (profgen.FieldResult, error) {
	begin := time.Now()
	result, err := e.next.ExtractField(html, spec)
	strategy := result.Strategy
	if !result.Found {
		strategy = "(none)"
	}
	e.logger.Debug("extract field",
		"field", spec.Name,
		"strategy", strategy,
		"fragments", len(result.Values),
		"duration", time.Since(begin),
		"err", err,
	)
	return result, err
}

// ExtractEntries logs the number of items found and delegates.
func (e *LoggingExtractor) ExtractEntries(html string, spec profgen.EntrySpec) ([]profgen.RawEntry, error) {
	begin := time.Now()
	entries, err := e.next.ExtractEntries(html, spec)
	e.logger.Debug("extract entries",
		"section", spec.Section,
		"items", len(entries),
		"duration", time.Since(begin),
		"err", err,
	)
	return entries, err
}
