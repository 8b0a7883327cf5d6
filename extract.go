package profgen

// StrategyKind identifies how a selector strategy locates content.
type StrategyKind string

// Strategy kinds.
const (
	// StrategyCSS locates elements with a CSS selector.
	StrategyCSS StrategyKind = "css"

	// StrategyMainContent extracts the page's main content with boilerplate
	// removed, ignoring Selector. Used as a last-resort fallback for
	// free-text fields like the summary.
	StrategyMainContent StrategyKind = "main-content"
)

// Strategy is one step in an ordered fallback chain. Strategies are data,
// not code: the extractor tries them in sequence and the first one yielding
// a non-empty match wins.
type Strategy struct {
	Kind     StrategyKind
	Selector string
	// Attr extracts an attribute value instead of element text.
	Attr string
	// HTML captures the element's inner HTML instead of its text, for
	// fields that are later converted to markdown.
	HTML bool
	// Source labels the strategy in extraction results and logs.
	Source string
}

// Canonical field names shared between extraction specs and the section
// normalizers.
const (
	FieldTitle        = "title"
	FieldSubtitle     = "subtitle"
	FieldCaption      = "caption"
	FieldDescription  = "description"
	FieldEndorsements = "endorsements"
	FieldURL          = "url"
)

// FieldSpec names a logical field and the strategies that locate it.
type FieldSpec struct {
	Name       string
	Strategies []Strategy
}

// FieldResult is the tagged outcome of extracting one field. Absence is a
// legitimate outcome, not an error: page structure varies by account state
// and locale.
type FieldResult struct {
	Found bool
	// Values holds the raw text fragments, one per matched element.
	Values []string
	// Strategy is the Source label of the winning strategy.
	Strategy string
}

// Value returns the first fragment, or "" when nothing was found.
func (r FieldResult) Value() string {
	if !r.Found || len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// EntrySpec describes how to extract the repeated items of one profile
// section: the item selectors locate each list element (again an ordered
// fallback chain), and Fields are extracted within each item.
type EntrySpec struct {
	Section       string
	ItemSelectors []string
	Fields        []FieldSpec
}

// RawEntry is the untyped extraction result for one section item. The
// section normalizer validates and coerces it into a typed entry.
type RawEntry struct {
	Section  string
	Position int
	Fields   map[string]FieldResult
}

// Get returns the first fragment of the named field and whether it was found.
func (e RawEntry) Get(name string) (string, bool) {
	r, ok := e.Fields[name]
	if !ok || !r.Found {
		return "", false
	}
	return r.Value(), true
}

// Extractor extracts raw text fragments from a rendered document.
//
// Implementations must not fail for missing elements; they return a
// not-found result instead. An error is returned only when the document
// itself is empty or unparseable.
type Extractor interface {
	// ExtractField tries the spec's strategies in order and returns the
	// first non-empty match.
	ExtractField(html string, spec FieldSpec) (FieldResult, error)

	// ExtractEntries locates the section's repeated items and extracts each
	// item's fields. A section with no items yields an empty slice.
	ExtractEntries(html string, spec EntrySpec) ([]RawEntry, error)
}
