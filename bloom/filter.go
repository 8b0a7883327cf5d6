// Package bloom provides approximate sensitive-term membership testing
// using Bloom filters. The redactor consults it per token to skip the full
// keyword scan for clean text.
package bloom

import (
	"strings"

	"github.com/aleksw/profgen"
	"github.com/bits-and-blooms/bloom/v3"
)

// Ensure Filter implements profgen.TermFilter at compile time.
var _ profgen.TermFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over lowercased terms.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Bloom filter sized for n expected terms with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewKeywordFilter creates a filter seeded with every token of every
// keyword, so multi-word keywords ("trade secret") are reachable through
// any of their tokens.
func NewKeywordFilter(keywords []string) *Filter {
	f := NewFilter(uint(len(keywords)*2+1), 0.001)
	for _, kw := range keywords {
		for _, tok := range strings.Fields(strings.ToLower(kw)) {
			f.Add(tok)
		}
	}
	return f
}

// Add adds a term to the filter.
func (f *Filter) Add(term string) {
	f.f.AddString(strings.ToLower(term))
}

// Test returns true if the term might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(term string) bool {
	return f.f.TestString(strings.ToLower(term))
}

// EstimatedCount returns the approximate number of terms in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
