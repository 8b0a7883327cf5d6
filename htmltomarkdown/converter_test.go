package htmltomarkdown_test

import (
	"testing"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts inline markup", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		out, err := conv.Convert("<p>Led the <strong>platform</strong> team.</p>")
		require.NoError(t, err)
		assert.Contains(t, out, "**platform**")
		assert.NotContains(t, out, "<p>")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		out, err := conv.Convert("<ul><li>Shipped weekly</li><li>Cut latency</li></ul>")
		require.NoError(t, err)
		assert.Contains(t, out, "- Shipped weekly")
		assert.Contains(t, out, "- Cut latency")
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		out, err := conv.Convert("Plain description.")
		require.NoError(t, err)
		assert.Equal(t, "Plain description.", out)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
	})
}
