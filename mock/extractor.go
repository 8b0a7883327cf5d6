package mock

import "github.com/aleksw/profgen"

var _ profgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of profgen.Extractor.
type Extractor struct {
	ExtractFieldFn   func(html string, spec profgen.FieldSpec) (profgen.FieldResult, error)
	ExtractEntriesFn func(html string, spec profgen.EntrySpec) ([]profgen.RawEntry, error)
}

func (e *Extractor) ExtractField(html string, spec profgen.FieldSpec) (profgen.FieldResult, error) {
	return e.ExtractFieldFn(html, spec)
}

func (e *Extractor) ExtractEntries(html string, spec profgen.EntrySpec) ([]profgen.RawEntry, error) {
	return e.ExtractEntriesFn(html, spec)
}
