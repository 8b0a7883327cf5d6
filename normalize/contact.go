package normalize

import (
	"strings"

	"github.com/aleksw/profgen"
)

// Contact normalizes the contact-info overlay entries into ContactInfo.
// Each raw entry is one contact type: the title names it ("Email", "Phone",
// "Website", "Your Profile") and the subtitle holds the value, often as a
// link href.
func (n *Normalizer) Contact(raws []profgen.RawEntry) profgen.ContactInfo {
	var contact profgen.ContactInfo
	for _, raw := range raws {
		kind, _ := raw.Get(profgen.FieldTitle)
		value, ok := raw.Get(profgen.FieldSubtitle)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch {
		case containsFold(kind, "email"):
			contact.Email = strings.TrimPrefix(value, "mailto:")
		case containsFold(kind, "phone"):
			contact.Phone = strings.TrimPrefix(value, "tel:")
		case containsFold(kind, "website"):
			contact.Website = value
		case containsFold(kind, "profile"):
			contact.ProfileURL = value
		}
	}
	return contact
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
