package normalize

import (
	"strings"

	"github.com/aleksw/profgen"
)

// Education normalizes raw education items. The subtitle line carries
// "Degree, Field of study"; a missing institution drops the entry.
func (n *Normalizer) Education(raws []profgen.RawEntry) []profgen.EducationEntry {
	entries := make([]profgen.EducationEntry, 0, len(raws))
	for _, raw := range raws {
		institution, _ := raw.Get(profgen.FieldTitle)
		subtitle, _ := raw.Get(profgen.FieldSubtitle)
		datesText, _ := captionParts(raw)

		degree, field := splitDegree(subtitle)
		entry := profgen.EducationEntry{
			Institution:  strings.TrimSpace(institution),
			Degree:       degree,
			FieldOfStudy: field,
			Dates:        profgen.ParseDateRange(datesText),
			Description:  n.description(raw),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// splitDegree splits "Bachelor of Science, Computer Science" into degree and
// field of study. Without a comma the whole line is the degree.
func splitDegree(subtitle string) (degree, field string) {
	degree, field, _ = strings.Cut(subtitle, ",")
	return strings.TrimSpace(degree), strings.TrimSpace(field)
}
