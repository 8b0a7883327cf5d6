package main

import (
	"testing"

	"github.com/aleksw/profgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Ada Example", "ada_example"},
		{"Jean-Luc Picard", "jean_luc_picard"},
		{"J. R. R. Tolkien", "j_r_r_tolkien"},
		{"  trailing  ", "trailing"},
		{"Zażółć", "za"},
		{"", "resume"},
		{"!!!", "resume"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ada_example_resume.md", outputFileName("Ada Example", profgen.FormatMarkdown))
	assert.Equal(t, "ada_example_resume.html", outputFileName("Ada Example", profgen.FormatHTML))
	assert.Equal(t, "resume.json", outputFileName("", profgen.FormatJSON))
}

func TestParseFormats(t *testing.T) {
	t.Parallel()

	t.Run("parses and dedupes", func(t *testing.T) {
		t.Parallel()

		formats, err := parseFormats([]string{"markdown", "json", "markdown", "html"})
		require.NoError(t, err)
		assert.Equal(t, []profgen.Format{profgen.FormatMarkdown, profgen.FormatJSON, profgen.FormatHTML}, formats)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		_, err := parseFormats([]string{"markdown", "docx"})
		require.Error(t, err)
		assert.Equal(t, profgen.ECONFIG, profgen.ErrorCode(err))
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		t.Parallel()

		_, err := parseFormats(nil)
		require.Error(t, err)
		assert.Equal(t, profgen.ECONFIG, profgen.ErrorCode(err))
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want int
	}{
		{profgen.ECONFIG, exitConfig},
		{profgen.EUNAUTHORIZED, exitAuth},
		{profgen.EUNAVAILABLE, exitExtraction},
		{profgen.EINVALID, exitExtraction},
		{profgen.EINTERNAL, exitIO},
		{profgen.ENOTFOUND, exitIO},
		{profgen.ECOMPLIANCE, exitCompliance},
	}
	for _, tt := range tests {
		err := profgen.Errorf(tt.code, "boom")
		assert.Equal(t, tt.want, exitCode(err), "code %s", tt.code)
	}
}
