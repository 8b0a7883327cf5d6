package goquery

import "github.com/aleksw/profgen"

// Canonical extraction specs for profile pages. Selector chains are ordered
// primary-first; later entries cover older page markup and locale variants.
// The normalizers consume the resulting raw entries by field name.

// NameSpec locates the profile holder's name.
func NameSpec() profgen.FieldSpec {
	return profgen.FieldSpec{
		Name: "name",
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: "h1.text-heading-xlarge", Source: "heading"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-text-details__left-panel h1", Source: "details-panel"},
			{Kind: profgen.StrategyCSS, Selector: "main h1", Source: "main-h1"},
		},
	}
}

// HeadlineSpec locates the short headline under the name.
func HeadlineSpec() profgen.FieldSpec {
	return profgen.FieldSpec{
		Name: "headline",
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: ".text-body-medium.break-words", Source: "body-medium"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-text-details__left-panel .text-body-medium", Source: "details-panel"},
		},
	}
}

// LocationSpec locates the profile location line.
func LocationSpec() profgen.FieldSpec {
	return profgen.FieldSpec{
		Name: "location",
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: ".text-body-small.inline.t-black--light.break-words", Source: "body-small"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-text-details__left-panel .text-body-small", Source: "details-panel"},
		},
	}
}

// SummarySpec locates the About text, falling back to main-content
// extraction when the section markup is unrecognizable.
func SummarySpec() profgen.FieldSpec {
	return profgen.FieldSpec{
		Name: "summary",
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: "section:has(div#about) .display-flex.full-width span[aria-hidden=true]", Source: "about-section"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-about-section .pv-about__summary-text", Source: "about-legacy"},
			{Kind: profgen.StrategyMainContent, Source: "main-content"},
		},
	}
}

// itemChain returns the ordered item selectors for a section anchor. Detail
// pages carry a single flat list; the overview page scopes lists per
// section.
func itemChain(anchor string) []string {
	return []string{
		"section:has(div#" + anchor + ") li.artdeco-list__item",
		"main section li.artdeco-list__item",
	}
}

var (
	titleField = profgen.FieldSpec{
		Name: profgen.FieldTitle,
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: ".mr1.t-bold span[aria-hidden=true]", Source: "bold-span"},
			{Kind: profgen.StrategyCSS, Selector: ".mr1.t-bold", Source: "bold"},
			{Kind: profgen.StrategyCSS, Selector: "h3", Source: "h3"},
		},
	}

	subtitleField = profgen.FieldSpec{
		Name: profgen.FieldSubtitle,
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: "span.t-14.t-normal:not(.t-black--light) span[aria-hidden=true]", Source: "normal-span"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-entity__secondary-title", Source: "secondary-title"},
		},
	}

	captionField = profgen.FieldSpec{
		Name: profgen.FieldCaption,
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: "span.t-14.t-normal.t-black--light span[aria-hidden=true]", Source: "caption-span"},
			{Kind: profgen.StrategyCSS, Selector: ".pv-entity__date-range span:nth-child(2)", Source: "date-range"},
		},
	}

	descriptionField = profgen.FieldSpec{
		Name: profgen.FieldDescription,
		Strategies: []profgen.Strategy{
			{Kind: profgen.StrategyCSS, Selector: ".pv-shared-text-with-see-more span[aria-hidden=true]", HTML: true, Source: "see-more"},
			{Kind: profgen.StrategyCSS, Selector: ".t-14.t-normal.t-black span[aria-hidden=true]", HTML: true, Source: "body-span"},
		},
	}
)

// ExperienceSpec describes the experience section. Per item: title = role,
// subtitle = employer (possibly suffixed with an employment type), caption
// fragments = date range then location, description = free text.
func ExperienceSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "experience",
		ItemSelectors: itemChain("experience"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, captionField, descriptionField},
	}
}

// EducationSpec describes the education section. Per item: title = school,
// subtitle = degree and field of study, caption = date range.
func EducationSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "education",
		ItemSelectors: itemChain("education"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, captionField, descriptionField},
	}
}

// SkillsSpec describes the skills section. Per item: title = skill name,
// endorsements = adjacent label text carrying the count.
func SkillsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "skills",
		ItemSelectors: itemChain("skills"),
		Fields: []profgen.FieldSpec{
			titleField,
			{
				Name: profgen.FieldEndorsements,
				Strategies: []profgen.Strategy{
					{Kind: profgen.StrategyCSS, Selector: ".pv-skill-category-entity__endorsement-count", Source: "endorsement-count"},
					{Kind: profgen.StrategyCSS, Selector: "span.t-14.t-normal span[aria-hidden=true]", Source: "normal-span"},
				},
			},
		},
	}
}

// CertificationsSpec describes the licenses and certifications section.
// Per item: title = name, subtitle = issuer, caption = issue date, and the
// credential line rides along in the caption fragments.
func CertificationsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "certifications",
		ItemSelectors: itemChain("licenses_and_certifications"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, captionField},
	}
}

// ProjectsSpec describes the projects section.
func ProjectsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "projects",
		ItemSelectors: itemChain("projects"),
		Fields: []profgen.FieldSpec{
			titleField, captionField, descriptionField,
			{
				Name: profgen.FieldURL,
				Strategies: []profgen.Strategy{
					{Kind: profgen.StrategyCSS, Selector: "a.optional-action-target-wrapper", Attr: "href", Source: "action-link"},
				},
			},
		},
	}
}

// LanguagesSpec describes the languages section. Per item: title = language,
// subtitle = proficiency.
func LanguagesSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "languages",
		ItemSelectors: itemChain("languages"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField},
	}
}

// RecommendationsSpec describes received recommendations. Per item: title =
// author, subtitle = relation line, description = recommendation text.
func RecommendationsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "recommendations",
		ItemSelectors: itemChain("recommendations"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, descriptionField},
	}
}

// VolunteerSpec describes volunteer experience. Per item: title = role,
// subtitle = organization, caption = date range.
func VolunteerSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "volunteer",
		ItemSelectors: itemChain("volunteering_experience"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, captionField, descriptionField},
	}
}

// HonorsSpec describes honors and awards. Per item: title = award, subtitle
// = issuer line, caption = date.
func HonorsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "honors",
		ItemSelectors: itemChain("honors_and_awards"),
		Fields:        []profgen.FieldSpec{titleField, subtitleField, captionField, descriptionField},
	}
}

// PublicationsSpec describes publications. Per item: title = publication,
// subtitle = publisher and date line.
func PublicationsSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "publications",
		ItemSelectors: itemChain("publications"),
		Fields: []profgen.FieldSpec{
			titleField, subtitleField,
			{
				Name: profgen.FieldURL,
				Strategies: []profgen.Strategy{
					{Kind: profgen.StrategyCSS, Selector: "a.optional-action-target-wrapper", Attr: "href", Source: "action-link"},
				},
			},
		},
	}
}

// ContactSpec locates the contact info overlay fields.
func ContactSpec() profgen.EntrySpec {
	return profgen.EntrySpec{
		Section:       "contact",
		ItemSelectors: []string{"section.pv-contact-info__contact-type", ".pv-profile-section__section-info section"},
		Fields: []profgen.FieldSpec{
			{
				Name: profgen.FieldTitle,
				Strategies: []profgen.Strategy{
					{Kind: profgen.StrategyCSS, Selector: "h3.pv-contact-info__header", Source: "contact-header"},
					{Kind: profgen.StrategyCSS, Selector: "h3", Source: "h3"},
				},
			},
			{
				Name: profgen.FieldSubtitle,
				Strategies: []profgen.Strategy{
					{Kind: profgen.StrategyCSS, Selector: "a[href]", Attr: "href", Source: "link"},
					{Kind: profgen.StrategyCSS, Selector: ".pv-contact-info__ci-container", Source: "container"},
				},
			},
		},
	}
}
