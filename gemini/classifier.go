// Package gemini implements the optional LLM-backed skill classifier.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aleksw/profgen"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Classifier implements profgen.SkillClassifier at compile time.
var _ profgen.SkillClassifier = (*Classifier)(nil)

// Classifier implements profgen.SkillClassifier using Google Gemini. All
// skill names are classified in one call; the normalizer falls back to
// keyword classification when the call fails.
type Classifier struct {
	client *genai.Client
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify assigns a category to each skill name. The result map only
// carries names the model produced a known category for; callers treat
// missing names as uncategorized.
func (c *Classifier) Classify(ctx context.Context, names []string) (map[string]profgen.SkillCategory, error) {
	if len(names) == 0 {
		return map[string]profgen.SkillCategory{}, nil
	}

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(names)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "gemini returned nil result")
	}

	return parseResponse(result.Text(), names)
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You classify professional skills into fixed categories. Respond with a JSON object mapping each skill name, exactly as given, to one category from the allowed list. Use no other categories and no extra text.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the prompt listing the allowed categories and the
// skill names to classify.
func BuildUserPrompt(names []string) string {
	var sb strings.Builder
	sb.WriteString("Allowed categories:\n")
	for _, cat := range profgen.CategoryOrder {
		fmt.Fprintf(&sb, "- %s\n", cat)
	}
	sb.WriteString("\nSkills:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	return sb.String()
}

func parseResponse(text string, names []string) (map[string]profgen.SkillCategory, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "parse classification response: %v", err)
	}

	valid := make(map[profgen.SkillCategory]bool, len(profgen.CategoryOrder))
	for _, cat := range profgen.CategoryOrder {
		valid[cat] = true
	}

	out := make(map[string]profgen.SkillCategory, len(names))
	for _, name := range names {
		if cat := profgen.SkillCategory(raw[name]); valid[cat] {
			out[name] = cat
		}
	}
	return out, nil
}
