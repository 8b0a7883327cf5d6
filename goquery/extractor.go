// Package goquery implements field extraction over rendered HTML using CSS
// fallback-selector chains.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleksw/profgen"
)

// Ensure Extractor implements profgen.Extractor at compile time.
var _ profgen.Extractor = (*Extractor)(nil)

// MainContentFunc extracts a page's main content with boilerplate removed.
// Used for StrategyMainContent fallbacks; the trafilatura package provides
// the production implementation.
type MainContentFunc func(html string) (string, error)

// Extractor extracts raw text fragments by trying each strategy of a field
// spec in order. Missing elements are never an error.
type Extractor struct {
	mainContent MainContentFunc
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMainContent supplies the main-content fallback used by strategies of
// kind StrategyMainContent. Without it those strategies yield no match.
func WithMainContent(fn MainContentFunc) Option {
	return func(e *Extractor) { e.mainContent = fn }
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractField tries the spec's strategies in order against the whole
// document and returns the first non-empty match.
func (e *Extractor) ExtractField(html string, spec profgen.FieldSpec) (profgen.FieldResult, error) {
	doc, err := parse(html)
	if err != nil {
		return profgen.FieldResult{}, err
	}

	for _, s := range spec.Strategies {
		switch s.Kind {
		case profgen.StrategyMainContent:
			if e.mainContent == nil {
				continue
			}
			content, err := e.mainContent(html)
			if err != nil || strings.TrimSpace(content) == "" {
				continue
			}
			return profgen.FieldResult{
				Found:    true,
				Values:   []string{strings.TrimSpace(content)},
				Strategy: s.Source,
			}, nil
		default:
			values := collect(doc.Selection, s)
			if len(values) > 0 {
				return profgen.FieldResult{Found: true, Values: values, Strategy: s.Source}, nil
			}
		}
	}
	return profgen.FieldResult{}, nil
}

// ExtractEntries locates the section's repeated items using the entry spec's
// ordered item selectors, then extracts each field inside each item.
func (e *Extractor) ExtractEntries(html string, spec profgen.EntrySpec) ([]profgen.RawEntry, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var items *goquery.Selection
	for _, sel := range spec.ItemSelectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			items = found
			break
		}
	}
	if items == nil {
		// Section not present. A legitimate outcome, not a failure.
		return nil, nil
	}

	entries := make([]profgen.RawEntry, 0, items.Length())
	items.Each(func(i int, item *goquery.Selection) {
		entry := profgen.RawEntry{
			Section:  spec.Section,
			Position: i,
			Fields:   make(map[string]profgen.FieldResult, len(spec.Fields)),
		}
		for _, field := range spec.Fields {
			entry.Fields[field.Name] = extractWithin(item, field)
		}
		entries = append(entries, entry)
	})
	return entries, nil
}

func parse(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, profgen.Errorf(profgen.EINVALID, "empty document")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, profgen.Errorf(profgen.EINVALID, "failed to parse document: %v", err)
	}
	return doc, nil
}

// extractWithin tries a field's CSS strategies scoped to one item.
// Main-content strategies make no sense inside a list item and are skipped.
func extractWithin(item *goquery.Selection, spec profgen.FieldSpec) profgen.FieldResult {
	for _, s := range spec.Strategies {
		if s.Kind == profgen.StrategyMainContent {
			continue
		}
		values := collect(item, s)
		if len(values) > 0 {
			return profgen.FieldResult{Found: true, Values: values, Strategy: s.Source}
		}
	}
	return profgen.FieldResult{}
}

// collect gathers non-empty fragments matched by one CSS strategy,
// deduplicating exact repeats while preserving document order. Profile
// markup duplicates visible text in screen-reader spans, so exact repeats
// are common.
func collect(scope *goquery.Selection, s profgen.Strategy) []string {
	var values []string
	seen := make(map[string]bool)

	scope.Find(s.Selector).Each(func(_ int, sel *goquery.Selection) {
		var v string
		switch {
		case s.Attr != "":
			v, _ = sel.Attr(s.Attr)
		case s.HTML:
			v, _ = sel.Html()
		default:
			v = sel.Text()
		}
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		values = append(values, v)
	})
	return values
}
