package normalize

import (
	"strings"

	"github.com/aleksw/profgen"
)

// Experience normalizes raw experience items: employer-name cleanup with
// unresolved flagging, date parsing with raw fallback, deduplication.
// Grouping happens separately via profgen.GroupExperience so the record
// keeps the flat entry list.
func (n *Normalizer) Experience(raws []profgen.RawEntry) []profgen.ExperienceEntry {
	entries := make([]profgen.ExperienceEntry, 0, len(raws))
	for _, raw := range raws {
		entry, err := n.experienceEntry(raw)
		if err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return profgen.DedupeExperience(entries)
}

func (n *Normalizer) experienceEntry(raw profgen.RawEntry) (profgen.ExperienceEntry, error) {
	title, _ := raw.Get(profgen.FieldTitle)
	subtitle, _ := raw.Get(profgen.FieldSubtitle)
	datesText, location := captionParts(raw)

	employer, unresolved := profgen.CleanEmployerName(subtitle)

	entry := profgen.ExperienceEntry{
		Title:              strings.TrimSpace(title),
		Employer:           employer,
		EmployerUnresolved: unresolved,
		Location:           strings.TrimSpace(location),
		Dates:              profgen.ParseDateRange(datesText),
		Description:        n.description(raw),
	}
	if err := entry.Validate(); err != nil {
		return profgen.ExperienceEntry{}, err
	}
	return entry, nil
}
