package goquery_test

import (
	"testing"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overviewHTML = `
<html><body><main>
  <h1 class="text-heading-xlarge">Ada Example</h1>
  <div class="text-body-medium break-words">Staff Engineer</div>
  <span class="text-body-small inline t-black--light break-words">Warsaw, Poland</span>
  <section><div id="experience"></div>
    <ul>
      <li class="artdeco-list__item">
        <div class="mr1 t-bold"><span aria-hidden="true">Staff Engineer</span><span class="visually-hidden">Staff Engineer</span></div>
        <span class="t-14 t-normal"><span aria-hidden="true">Acme Corp · Full-time</span></span>
        <span class="t-14 t-normal t-black--light"><span aria-hidden="true">Jan 2021 - Present · 3 yrs</span></span>
        <span class="t-14 t-normal t-black--light"><span aria-hidden="true">Warsaw, Poland</span></span>
        <div class="pv-shared-text-with-see-more"><span aria-hidden="true">Leads the <strong>platform</strong> team.</span></div>
      </li>
      <li class="artdeco-list__item">
        <div class="mr1 t-bold"><span aria-hidden="true">Engineer</span></div>
        <span class="t-14 t-normal"><span aria-hidden="true">Globex</span></span>
        <span class="t-14 t-normal t-black--light"><span aria-hidden="true">2018 - 2021</span></span>
      </li>
    </ul>
  </section>
</main></body></html>`

func TestExtractor_ExtractField(t *testing.T) {
	t.Parallel()

	t.Run("first matching strategy wins", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.ExtractField(overviewHTML, goquery.NameSpec())
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "Ada Example", result.Value())
		assert.Equal(t, "heading", result.Strategy)
	})

	t.Run("falls through to later strategies", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><h1>Fallback Name</h1></main></body></html>`
		e := goquery.NewExtractor()
		result, err := e.ExtractField(html, goquery.NameSpec())
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "Fallback Name", result.Value())
		assert.Equal(t, "main-h1", result.Strategy)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.ExtractField("<html><body><p>nothing here</p></body></html>", goquery.NameSpec())
		require.NoError(t, err)

		assert.False(t, result.Found)
		assert.Empty(t, result.Values)
	})

	t.Run("empty document is EINVALID", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractField("   ", goquery.NameSpec())
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
	})

	t.Run("main-content fallback engages when selectors miss", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithMainContent(func(string) (string, error) {
			return "Recovered summary text.", nil
		}))
		result, err := e.ExtractField("<html><body><p>opaque markup</p></body></html>", goquery.SummarySpec())
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "Recovered summary text.", result.Value())
		assert.Equal(t, "main-content", result.Strategy)
	})

	t.Run("main-content strategy is skipped without a provider", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result, err := e.ExtractField("<html><body><p>opaque markup</p></body></html>", goquery.SummarySpec())
		require.NoError(t, err)
		assert.False(t, result.Found)
	})
}

func TestExtractor_ExtractEntries(t *testing.T) {
	t.Parallel()

	t.Run("extracts one entry per list item", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		entries, err := e.ExtractEntries(overviewHTML, goquery.ExperienceSpec())
		require.NoError(t, err)
		require.Len(t, entries, 2)

		first := entries[0]
		assert.Equal(t, "experience", first.Section)
		assert.Equal(t, 0, first.Position)
		title, ok := first.Get(profgen.FieldTitle)
		require.True(t, ok)
		assert.Equal(t, "Staff Engineer", title)
		subtitle, ok := first.Get(profgen.FieldSubtitle)
		require.True(t, ok)
		assert.Equal(t, "Acme Corp · Full-time", subtitle)

		caption := first.Fields[profgen.FieldCaption]
		require.True(t, caption.Found)
		require.Len(t, caption.Values, 2)
		assert.Equal(t, "Jan 2021 - Present · 3 yrs", caption.Values[0])
		assert.Equal(t, "Warsaw, Poland", caption.Values[1])

		description, ok := first.Get(profgen.FieldDescription)
		require.True(t, ok)
		assert.Contains(t, description, "<strong>platform</strong>")

		second := entries[1]
		secondTitle, ok := second.Get(profgen.FieldTitle)
		require.True(t, ok)
		assert.Equal(t, "Engineer", secondTitle)
		assert.False(t, second.Fields[profgen.FieldDescription].Found)
	})

	t.Run("deduplicates screen-reader repeats", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		entries, err := e.ExtractEntries(overviewHTML, goquery.ExperienceSpec())
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		title := entries[0].Fields[profgen.FieldTitle]
		assert.Equal(t, []string{"Staff Engineer"}, title.Values)
	})

	t.Run("missing section yields no entries and no error", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		entries, err := e.ExtractEntries("<html><body><p>bare</p></body></html>", goquery.PublicationsSpec())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("attribute strategies capture hrefs", func(t *testing.T) {
		t.Parallel()

		html := `
<html><body>
  <section class="pv-contact-info__contact-type">
    <h3 class="pv-contact-info__header">Email</h3>
    <a href="mailto:ada@example.com">ada@example.com</a>
  </section>
</body></html>`
		e := goquery.NewExtractor()
		entries, err := e.ExtractEntries(html, goquery.ContactSpec())
		require.NoError(t, err)
		require.Len(t, entries, 1)

		kind, ok := entries[0].Get(profgen.FieldTitle)
		require.True(t, ok)
		assert.Equal(t, "Email", kind)
		value, ok := entries[0].Get(profgen.FieldSubtitle)
		require.True(t, ok)
		assert.Equal(t, "mailto:ada@example.com", value)
	})
}
