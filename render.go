package profgen

import "strings"

// Format selects the output document format.
type Format string

// Output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat validates a configured format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", Errorf(ECONFIG, "unknown output format %q (want markdown, html, or json)", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".md"
	}
}

// Renderer turns a profile record into a document. Implementations are pure:
// no network or filesystem side effects, and the record is never mutated.
type Renderer interface {
	Render(rec *ProfileRecord) ([]byte, error)
}
