package normalize

import (
	"strings"

	"github.com/aleksw/profgen"
)

// Projects normalizes raw project items.
func (n *Normalizer) Projects(raws []profgen.RawEntry) []profgen.ProjectEntry {
	entries := make([]profgen.ProjectEntry, 0, len(raws))
	for _, raw := range raws {
		name, _ := raw.Get(profgen.FieldTitle)
		datesText, _ := captionParts(raw)
		url, _ := raw.Get(profgen.FieldURL)

		entry := profgen.ProjectEntry{
			Name:        strings.TrimSpace(name),
			Dates:       profgen.ParseDateRange(datesText),
			Description: n.description(raw),
			URL:         strings.TrimSpace(url),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Languages normalizes raw language items. The subtitle is the proficiency
// line ("Native or bilingual proficiency").
func (n *Normalizer) Languages(raws []profgen.RawEntry) []profgen.LanguageEntry {
	entries := make([]profgen.LanguageEntry, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		name, _ := raw.Get(profgen.FieldTitle)
		proficiency, _ := raw.Get(profgen.FieldSubtitle)

		entry := profgen.LanguageEntry{
			Name:        strings.TrimSpace(name),
			Proficiency: strings.TrimSpace(proficiency),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		key := strings.ToLower(entry.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, entry)
	}
	return entries
}

// Recommendations normalizes received recommendations. The subtitle line
// carries the author's relation ("Managed Alex directly").
func (n *Normalizer) Recommendations(raws []profgen.RawEntry) []profgen.RecommendationEntry {
	entries := make([]profgen.RecommendationEntry, 0, len(raws))
	for _, raw := range raws {
		author, _ := raw.Get(profgen.FieldTitle)
		relation, _ := raw.Get(profgen.FieldSubtitle)

		entry := profgen.RecommendationEntry{
			Author:   strings.TrimSpace(author),
			Relation: strings.TrimSpace(relation),
			Text:     n.description(raw),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Volunteer normalizes volunteer experience items.
func (n *Normalizer) Volunteer(raws []profgen.RawEntry) []profgen.VolunteerEntry {
	entries := make([]profgen.VolunteerEntry, 0, len(raws))
	for _, raw := range raws {
		role, _ := raw.Get(profgen.FieldTitle)
		org, _ := raw.Get(profgen.FieldSubtitle)
		datesText, _ := captionParts(raw)

		entry := profgen.VolunteerEntry{
			Organization: strings.TrimSpace(org),
			Role:         strings.TrimSpace(role),
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

// Honors normalizes honors and awards.
func (n *Normalizer) Honors(raws []profgen.RawEntry) []profgen.HonorEntry {
	entries := make([]profgen.HonorEntry, 0, len(raws))
	for _, raw := range raws {
		title, _ := raw.Get(profgen.FieldTitle)
		issuer, _ := raw.Get(profgen.FieldSubtitle)
		datesText, _ := captionParts(raw)

		entry := profgen.HonorEntry{
			Title:       strings.TrimSpace(title),
			Issuer:      strings.TrimSpace(issuer),
			Dates:       profgen.ParseDateRange(datesText),
			Description: n.description(raw),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Publications normalizes publications. The subtitle carries
// "Publisher · Date".
func (n *Normalizer) Publications(raws []profgen.RawEntry) []profgen.PublicationEntry {
	entries := make([]profgen.PublicationEntry, 0, len(raws))
	for _, raw := range raws {
		title, _ := raw.Get(profgen.FieldTitle)
		subtitle, _ := raw.Get(profgen.FieldSubtitle)
		url, _ := raw.Get(profgen.FieldURL)

		publisher, dateText := splitPublisher(subtitle)
		entry := profgen.PublicationEntry{
			Title:     strings.TrimSpace(title),
			Publisher: publisher,
			Dates:     profgen.ParseDateRange(dateText),
			URL:       strings.TrimSpace(url),
		}
		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// splitPublisher splits "IEEE Software · Mar 2021" into publisher and date.
func splitPublisher(subtitle string) (publisher, dateText string) {
	publisher, dateText, found := strings.Cut(subtitle, "·")
	if !found {
		return strings.TrimSpace(subtitle), ""
	}
	return strings.TrimSpace(publisher), strings.TrimSpace(dateText)
}
