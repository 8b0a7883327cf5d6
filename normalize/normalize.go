// Package normalize turns raw extraction fragments into typed profile
// entries: per-section validation, employer cleanup and grouping,
// deduplication, and endorsement parsing.
//
// Failure policy: a malformed individual entry is skipped and logged; it
// never aborts its section, and a failed section never aborts the run.
package normalize

import (
	"log/slog"
	"strings"

	"github.com/aleksw/profgen"
)

// Converter converts an HTML fragment to markdown text. Descriptions are
// captured as inner HTML so lists and line breaks survive normalization.
type Converter interface {
	Convert(html string) (string, error)
}

// Normalizer holds the shared dependencies of the per-section passes.
type Normalizer struct {
	converter Converter
	logger    *slog.Logger
}

// New creates a Normalizer. The converter may be nil, in which case
// description fragments are kept as plain text.
func New(converter Converter, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{converter: converter, logger: logger}
}

// description joins a field's fragments and converts HTML to markdown.
func (n *Normalizer) description(raw profgen.RawEntry) string {
	result, ok := raw.Fields[profgen.FieldDescription]
	if !ok || !result.Found {
		return ""
	}
	joined := strings.Join(result.Values, "\n\n")
	if n.converter == nil {
		return strings.TrimSpace(joined)
	}
	md, err := n.converter.Convert(joined)
	if err != nil {
		// The fragment may already be plain text; keep it rather than
		// losing the description.
		return strings.TrimSpace(joined)
	}
	return md
}

// skip logs one dropped entry. Dropped entries are warnings, never errors.
func (n *Normalizer) skip(raw profgen.RawEntry, err error) {
	n.logger.Warn("dropping malformed entry",
		"section", raw.Section,
		"position", raw.Position,
		"reason", profgen.ErrorMessage(err),
	)
}

// captionParts returns the caption fragments: profile list items carry the
// date range first and the location (when present) second.
func captionParts(raw profgen.RawEntry) (dates string, location string) {
	result, ok := raw.Fields[profgen.FieldCaption]
	if !ok || !result.Found {
		return "", ""
	}
	if len(result.Values) > 0 {
		dates = result.Values[0]
	}
	if len(result.Values) > 1 {
		location = result.Values[1]
	}
	return dates, location
}
