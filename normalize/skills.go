package normalize

import (
	"context"
	"strings"

	"github.com/aleksw/profgen"
)

// Skills normalizes raw skill items into a unique set and assigns
// categories with the given classifier. Endorsement counts come from the
// adjacent label text; a later duplicate with a higher count overwrites the
// stored count.
func (n *Normalizer) Skills(ctx context.Context, raws []profgen.RawEntry, classifier profgen.SkillClassifier) []profgen.SkillEntry {
	set := profgen.NewSkillSet()
	for _, raw := range raws {
		name, ok := raw.Get(profgen.FieldTitle)
		if !ok || strings.TrimSpace(name) == "" {
			n.skip(raw, profgen.Errorf(profgen.EINVALID, "skill entry requires a name"))
			continue
		}

		entry := profgen.SkillEntry{Name: strings.TrimSpace(name)}
		if label, ok := raw.Get(profgen.FieldEndorsements); ok {
			entry.Endorsements = profgen.ParseEndorsements(label)
		}
		set.Add(entry)
	}

	skills := set.Entries()
	if classifier == nil || len(skills) == 0 {
		return skills
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	categories, err := classifier.Classify(ctx, names)
	if err != nil {
		// Classification is an enrichment; skills stay uncategorized on
		// failure.
		n.logger.Warn("skill classification failed", "err", err)
		return skills
	}
	for i := range skills {
		if cat, ok := categories[skills[i].Name]; ok {
			skills[i].Category = cat
		}
	}
	return skills
}
