package render

import (
	"fmt"
	"strings"

	"github.com/aleksw/profgen"
)

// Markdown renders a record as a Markdown resume. Empty sections are
// omitted entirely, headings included.
type Markdown struct{}

// Render implements profgen.Renderer.
func (m *Markdown) Render(rec *profgen.ProfileRecord) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", rec.Name)
	if rec.Headline != "" {
		fmt.Fprintf(&b, "\n%s\n", rec.Headline)
	}
	if rec.Location != "" {
		fmt.Fprintf(&b, "\n%s\n", rec.Location)
	}
	m.contact(&b, rec.Contact)
	m.summary(&b, rec.Summary)
	m.skills(&b, rec.Skills)
	m.experience(&b, rec.Experience)
	m.education(&b, rec.Education)
	m.certifications(&b, rec.Certifications)
	m.projects(&b, rec.Projects)
	m.languages(&b, rec.Languages)
	m.recommendations(&b, rec.Recommendations)
	m.volunteer(&b, rec.Volunteer)
	m.honors(&b, rec.Honors)
	m.publications(&b, rec.Publications)

	return []byte(b.String()), nil
}

func (m *Markdown) contact(b *strings.Builder, c profgen.ContactInfo) {
	var lines []string
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.Website != "" {
		lines = append(lines, "Website: "+c.Website)
	}
	if c.ProfileURL != "" {
		lines = append(lines, "Profile: "+c.ProfileURL)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n## Contact\n\n")
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
}

func (m *Markdown) summary(b *strings.Builder, summary string) {
	if summary == "" {
		return
	}
	fmt.Fprintf(b, "\n## Summary\n\n%s\n", summary)
}

func (m *Markdown) skills(b *strings.Builder, skills []profgen.SkillEntry) {
	groups := profgen.GroupSkillsByCategory(skills)
	if len(groups) == 0 {
		return
	}
	b.WriteString("\n## Skills\n")
	for _, group := range groups {
		fmt.Fprintf(b, "\n### %s\n\n", group.Category)
		for _, skill := range group.Skills {
			if skill.Endorsements != nil {
				fmt.Fprintf(b, "- %s (%d endorsements)\n", skill.Name, *skill.Endorsements)
			} else {
				fmt.Fprintf(b, "- %s\n", skill.Name)
			}
		}
	}
}

func (m *Markdown) experience(b *strings.Builder, entries []profgen.ExperienceEntry) {
	groups := profgen.GroupExperience(entries)
	if len(groups) == 0 {
		return
	}
	b.WriteString("\n## Experience\n")
	for _, group := range groups {
		fmt.Fprintf(b, "\n### %s\n", employerHeading(group))
		for _, role := range group.Roles {
			fmt.Fprintf(b, "\n#### %s\n", role.Title)
			if display := role.Dates.Display(); display != "" {
				fmt.Fprintf(b, "\n%s", display)
				if role.Location != "" {
					fmt.Fprintf(b, " | %s", role.Location)
				}
				b.WriteString("\n")
			} else if role.Location != "" {
				fmt.Fprintf(b, "\n%s\n", role.Location)
			}
			if role.Description != "" {
				fmt.Fprintf(b, "\n%s\n", role.Description)
			}
		}
	}
}

func (m *Markdown) education(b *strings.Builder, entries []profgen.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Education\n")
	for _, e := range entries {
		fmt.Fprintf(b, "\n### %s\n", e.Institution)
		degree := e.Degree
		if e.FieldOfStudy != "" {
			if degree != "" {
				degree += ", " + e.FieldOfStudy
			} else {
				degree = e.FieldOfStudy
			}
		}
		if degree != "" {
			fmt.Fprintf(b, "\n%s\n", degree)
		}
		if display := e.Dates.Display(); display != "" {
			fmt.Fprintf(b, "\n%s\n", display)
		}
		if e.Description != "" {
			fmt.Fprintf(b, "\n%s\n", e.Description)
		}
	}
}

func (m *Markdown) certifications(b *strings.Builder, entries []profgen.CertificationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Certifications\n\n")
	for _, e := range entries {
		line := "- **" + e.Name + "**"
		if e.Issuer != "" {
			line += " - " + e.Issuer
		}
		if display := e.Dates.Display(); display != "" {
			line += " (" + display + ")"
		}
		b.WriteString(line + "\n")
		if e.CredentialID != "" {
			fmt.Fprintf(b, "  - Credential ID: %s\n", e.CredentialID)
		}
	}
}

func (m *Markdown) projects(b *strings.Builder, entries []profgen.ProjectEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Projects\n")
	for _, e := range entries {
		fmt.Fprintf(b, "\n### %s\n", e.Name)
		if display := e.Dates.Display(); display != "" {
			fmt.Fprintf(b, "\n%s\n", display)
		}
		if e.Description != "" {
			fmt.Fprintf(b, "\n%s\n", e.Description)
		}
		if e.URL != "" {
			fmt.Fprintf(b, "\n<%s>\n", e.URL)
		}
	}
}

func (m *Markdown) languages(b *strings.Builder, entries []profgen.LanguageEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Languages\n\n")
	for _, e := range entries {
		if e.Proficiency != "" {
			fmt.Fprintf(b, "- %s (%s)\n", e.Name, e.Proficiency)
		} else {
			fmt.Fprintf(b, "- %s\n", e.Name)
		}
	}
}

func (m *Markdown) recommendations(b *strings.Builder, entries []profgen.RecommendationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Recommendations\n")
	for _, e := range entries {
		fmt.Fprintf(b, "\n### %s\n", e.Author)
		if e.Relation != "" {
			fmt.Fprintf(b, "\n%s\n", e.Relation)
		}
		if e.Text != "" {
			b.WriteString("\n")
			for _, line := range strings.Split(e.Text, "\n") {
				fmt.Fprintf(b, "> %s\n", line)
			}
		}
	}
}

func (m *Markdown) volunteer(b *strings.Builder, entries []profgen.VolunteerEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Volunteering\n")
	for _, e := range entries {
		heading := e.Organization
		if e.Role != "" {
			heading = e.Role + ", " + e.Organization
		}
		fmt.Fprintf(b, "\n### %s\n", heading)
		if display := e.Dates.Display(); display != "" {
			fmt.Fprintf(b, "\n%s\n", display)
		}
		if e.Description != "" {
			fmt.Fprintf(b, "\n%s\n", e.Description)
		}
	}
}

func (m *Markdown) honors(b *strings.Builder, entries []profgen.HonorEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Honors & Awards\n\n")
	for _, e := range entries {
		line := "- **" + e.Title + "**"
		if e.Issuer != "" {
			line += " - " + e.Issuer
		}
		if display := e.Dates.Display(); display != "" {
			line += " (" + display + ")"
		}
		b.WriteString(line + "\n")
		if e.Description != "" {
			fmt.Fprintf(b, "  - %s\n", e.Description)
		}
	}
}

func (m *Markdown) publications(b *strings.Builder, entries []profgen.PublicationEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n## Publications\n\n")
	for _, e := range entries {
		line := "- **" + e.Title + "**"
		if e.Publisher != "" {
			line += " - " + e.Publisher
		}
		if display := e.Dates.Display(); display != "" {
			line += " (" + display + ")"
		}
		b.WriteString(line + "\n")
		if e.URL != "" {
			fmt.Fprintf(b, "  - <%s>\n", e.URL)
		}
	}
}
