package render

import (
	"fmt"

	"github.com/aleksw/profgen"
	"github.com/beevik/etree"
)

// HTML renders a record as a standalone HTML document. The structure mirrors
// the Markdown renderer section for section so the two outputs stay
// comparable.
type HTML struct{}

// Render implements profgen.Renderer.
func (h *HTML) Render(rec *profgen.ProfileRecord) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")
	html := doc.CreateElement("html")
	html.CreateAttr("lang", "en")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(rec.Name)
	head.CreateElement("style").SetText(styleSheet)

	body := html.CreateElement("body")
	header := body.CreateElement("header")
	header.CreateElement("h1").SetText(rec.Name)
	if rec.Headline != "" {
		p := header.CreateElement("p")
		p.CreateAttr("class", "headline")
		p.SetText(rec.Headline)
	}
	if rec.Location != "" {
		p := header.CreateElement("p")
		p.CreateAttr("class", "location")
		p.SetText(rec.Location)
	}

	h.contact(body, rec.Contact)
	h.summary(body, rec.Summary)
	h.skills(body, rec.Skills)
	h.experience(body, rec.Experience)
	h.education(body, rec.Education)
	h.certifications(body, rec.Certifications)
	h.projects(body, rec.Projects)
	h.languages(body, rec.Languages)
	h.recommendations(body, rec.Recommendations)
	h.volunteer(body, rec.Volunteer)
	h.honors(body, rec.Honors)
	h.publications(body, rec.Publications)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "serialize html document: %v", err)
	}
	return out, nil
}

const styleSheet = `
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { margin-bottom: 0.25rem; }
h2 { border-bottom: 1px solid #ccc; padding-bottom: 0.25rem; margin-top: 2rem; }
.headline { font-style: italic; margin: 0; }
.location, .dates { color: #555; margin: 0.25rem 0; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1rem; color: #444; }
`

func section(body *etree.Element, title string) *etree.Element {
	sec := body.CreateElement("section")
	sec.CreateElement("h2").SetText(title)
	return sec
}

func (h *HTML) contact(body *etree.Element, c profgen.ContactInfo) {
	type item struct{ label, value string }
	var items []item
	if c.Email != "" {
		items = append(items, item{"Email", c.Email})
	}
	if c.Phone != "" {
		items = append(items, item{"Phone", c.Phone})
	}
	if c.Website != "" {
		items = append(items, item{"Website", c.Website})
	}
	if c.ProfileURL != "" {
		items = append(items, item{"Profile", c.ProfileURL})
	}
	if len(items) == 0 {
		return
	}
	ul := section(body, "Contact").CreateElement("ul")
	for _, it := range items {
		ul.CreateElement("li").SetText(it.label + ": " + it.value)
	}
}

func (h *HTML) summary(body *etree.Element, summary string) {
	if summary == "" {
		return
	}
	section(body, "Summary").CreateElement("p").SetText(summary)
}

func (h *HTML) skills(body *etree.Element, skills []profgen.SkillEntry) {
	groups := profgen.GroupSkillsByCategory(skills)
	if len(groups) == 0 {
		return
	}
	sec := section(body, "Skills")
	for _, group := range groups {
		sec.CreateElement("h3").SetText(string(group.Category))
		ul := sec.CreateElement("ul")
		for _, skill := range group.Skills {
			text := skill.Name
			if skill.Endorsements != nil {
				text = fmt.Sprintf("%s (%d endorsements)", skill.Name, *skill.Endorsements)
			}
			ul.CreateElement("li").SetText(text)
		}
	}
}

func (h *HTML) experience(body *etree.Element, entries []profgen.ExperienceEntry) {
	groups := profgen.GroupExperience(entries)
	if len(groups) == 0 {
		return
	}
	sec := section(body, "Experience")
	for _, group := range groups {
		sec.CreateElement("h3").SetText(employerHeading(group))
		for _, role := range group.Roles {
			art := sec.CreateElement("article")
			art.CreateElement("h4").SetText(role.Title)
			meta := role.Dates.Display()
			if role.Location != "" {
				if meta != "" {
					meta += " | " + role.Location
				} else {
					meta = role.Location
				}
			}
			if meta != "" {
				p := art.CreateElement("p")
				p.CreateAttr("class", "dates")
				p.SetText(meta)
			}
			if role.Description != "" {
				art.CreateElement("p").SetText(role.Description)
			}
		}
	}
}

func (h *HTML) education(body *etree.Element, entries []profgen.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	sec := section(body, "Education")
	for _, e := range entries {
		art := sec.CreateElement("article")
		art.CreateElement("h3").SetText(e.Institution)
		degree := e.Degree
		if e.FieldOfStudy != "" {
			if degree != "" {
				degree += ", " + e.FieldOfStudy
			} else {
				degree = e.FieldOfStudy
			}
		}
		if degree != "" {
			art.CreateElement("p").SetText(degree)
		}
		if display := e.Dates.Display(); display != "" {
			p := art.CreateElement("p")
			p.CreateAttr("class", "dates")
			p.SetText(display)
		}
		if e.Description != "" {
			art.CreateElement("p").SetText(e.Description)
		}
	}
}

func (h *HTML) certifications(body *etree.Element, entries []profgen.CertificationEntry) {
	if len(entries) == 0 {
		return
	}
	ul := section(body, "Certifications").CreateElement("ul")
	for _, e := range entries {
		li := ul.CreateElement("li")
		text := e.Name
		if e.Issuer != "" {
			text += " - " + e.Issuer
		}
		if display := e.Dates.Display(); display != "" {
			text += " (" + display + ")"
		}
		if e.CredentialID != "" {
			text += ", Credential ID: " + e.CredentialID
		}
		li.SetText(text)
	}
}

func (h *HTML) projects(body *etree.Element, entries []profgen.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	sec := section(body, "Projects")
	for _, e := range entries {
		art := sec.CreateElement("article")
		art.CreateElement("h3").SetText(e.Name)
		if display := e.Dates.Display(); display != "" {
			p := art.CreateElement("p")
			p.CreateAttr("class", "dates")
			p.SetText(display)
		}
		if e.Description != "" {
			art.CreateElement("p").SetText(e.Description)
		}
		if e.URL != "" {
			a := art.CreateElement("p").CreateElement("a")
			a.CreateAttr("href", e.URL)
			a.SetText(e.URL)
		}
	}
}

func (h *HTML) languages(body *etree.Element, entries []profgen.LanguageEntry) {
	if len(entries) == 0 {
		return
	}
	ul := section(body, "Languages").CreateElement("ul")
	for _, e := range entries {
		text := e.Name
		if e.Proficiency != "" {
			text += " (" + e.Proficiency + ")"
		}
		ul.CreateElement("li").SetText(text)
	}
}

func (h *HTML) recommendations(body *etree.Element, entries []profgen.RecommendationEntry) {
	if len(entries) == 0 {
		return
	}
	sec := section(body, "Recommendations")
	for _, e := range entries {
		art := sec.CreateElement("article")
		art.CreateElement("h3").SetText(e.Author)
		if e.Relation != "" {
			art.CreateElement("p").SetText(e.Relation)
		}
		if e.Text != "" {
			art.CreateElement("blockquote").SetText(e.Text)
		}
	}
}

func (h *HTML) volunteer(body *etree.Element, entries []profgen.VolunteerEntry) {
	if len(entries) == 0 {
		return
	}
	sec := section(body, "Volunteering")
	for _, e := range entries {
		art := sec.CreateElement("article")
		heading := e.Organization
		if e.Role != "" {
			heading = e.Role + ", " + e.Organization
		}
		art.CreateElement("h3").SetText(heading)
		if display := e.Dates.Display(); display != "" {
			p := art.CreateElement("p")
			p.CreateAttr("class", "dates")
			p.SetText(display)
		}
		if e.Description != "" {
			art.CreateElement("p").SetText(e.Description)
		}
	}
}

func (h *HTML) honors(body *etree.Element, entries []profgen.HonorEntry) {
	if len(entries) == 0 {
		return
	}
	ul := section(body, "Honors & Awards").CreateElement("ul")
	for _, e := range entries {
		text := e.Title
		if e.Issuer != "" {
			text += " - " + e.Issuer
		}
		if display := e.Dates.Display(); display != "" {
			text += " (" + display + ")"
		}
		if e.Description != "" {
			text += ". " + e.Description
		}
		ul.CreateElement("li").SetText(text)
	}
}

func (h *HTML) publications(body *etree.Element, entries []profgen.PublicationEntry) {
	if len(entries) == 0 {
		return
	}
	ul := section(body, "Publications").CreateElement("ul")
	for _, e := range entries {
		li := ul.CreateElement("li")
		text := e.Title
		if e.Publisher != "" {
			text += " - " + e.Publisher
		}
		if display := e.Dates.Display(); display != "" {
			text += " (" + display + ")"
		}
		li.SetText(text)
		if e.URL != "" {
			li.SetText(text + " ")
			a := li.CreateElement("a")
			a.CreateAttr("href", e.URL)
			a.SetText(e.URL)
		}
	}
}
