package bloom_test

import (
	"strings"
	"testing"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("membership is case insensitive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.001)
		f.Add("Salary")

		assert.True(t, f.Test("salary"))
		assert.True(t, f.Test("SALARY"))
	})

	t.Run("no false negatives for seeded keywords", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewKeywordFilter(profgen.DefaultSensitiveKeywords)
		for _, kw := range profgen.DefaultSensitiveKeywords {
			for _, tok := range strings.Fields(kw) {
				assert.True(t, f.Test(tok), "token %q of keyword %q must test positive", tok, kw)
			}
		}
	})

	t.Run("multi word keywords reachable by token", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewKeywordFilter([]string{"trade secret"})
		assert.True(t, f.Test("trade"))
		assert.True(t, f.Test("secret"))
	})

	t.Run("unrelated terms test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewKeywordFilter([]string{"salary", "compensation"})
		assert.False(t, f.Test("gopher"))
		assert.False(t, f.Test("kubernetes"))
	})
}
