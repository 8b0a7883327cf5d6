package normalize

import (
	"strings"

	"github.com/aleksw/profgen"
)

// Certifications normalizes raw certification items. The caption fragments
// carry the issue date ("Issued Jan 2023") and sometimes a credential line.
func (n *Normalizer) Certifications(raws []profgen.RawEntry) []profgen.CertificationEntry {
	entries := make([]profgen.CertificationEntry, 0, len(raws))
	for _, raw := range raws {
		name, _ := raw.Get(profgen.FieldTitle)
		issuer, _ := raw.Get(profgen.FieldSubtitle)

		entry := profgen.CertificationEntry{
			Name:   strings.TrimSpace(name),
			Issuer: strings.TrimSpace(issuer),
		}

		if caption, ok := raw.Fields[profgen.FieldCaption]; ok && caption.Found {
			for _, v := range caption.Values {
				switch {
				case strings.HasPrefix(v, "Credential ID"):
					entry.CredentialID = strings.TrimSpace(strings.TrimPrefix(v, "Credential ID"))
				case entry.Dates.IsZero():
					entry.Dates = profgen.ParseDateRange(stripIssued(v))
				}
			}
		}

		if err := entry.Validate(); err != nil {
			n.skip(raw, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// stripIssued removes the "Issued " / "Expired " prefixes from a
// certification date line.
func stripIssued(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"Issued ", "Expired "} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimPrefix(s, prefix)
		}
	}
	return s
}
