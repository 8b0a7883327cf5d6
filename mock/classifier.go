package mock

import (
	"context"

	"github.com/aleksw/profgen"
)

var _ profgen.SkillClassifier = (*Classifier)(nil)

// Classifier is a mock implementation of profgen.SkillClassifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, names []string) (map[string]profgen.SkillCategory, error)
}

func (c *Classifier) Classify(ctx context.Context, names []string) (map[string]profgen.SkillCategory, error) {
	return c.ClassifyFn(ctx, names)
}
