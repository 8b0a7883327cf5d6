package gemini_test

import (
	"testing"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt([]string{"Go", "PostgreSQL"})

	for _, cat := range profgen.CategoryOrder {
		assert.Contains(t, prompt, string(cat))
	}
	assert.Contains(t, prompt, "- Go\n")
	assert.Contains(t, prompt, "- PostgreSQL\n")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg := gemini.BuildConfig()

	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, float32(0.0), *cfg.Temperature)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	require.NotNil(t, cfg.SystemInstruction)
	require.NotEmpty(t, cfg.SystemInstruction.Parts)
	assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "JSON object")
}
