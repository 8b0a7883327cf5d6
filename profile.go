package profgen

import "time"

// ProfileRecord is the root aggregate produced by one assembly run. It is
// built once by the assembler and treated as read-only afterwards: the
// redactor and the renderers only copy from it, never mutate it.
type ProfileRecord struct {
	Name     string      `json:"name"`
	Headline string      `json:"headline,omitempty"`
	Summary  string      `json:"summary,omitempty"`
	Location string      `json:"location,omitempty"`
	Contact  ContactInfo `json:"contact"`

	Experience      []ExperienceEntry     `json:"experience,omitempty"`
	Skills          []SkillEntry          `json:"skills,omitempty"`
	Education       []EducationEntry      `json:"education,omitempty"`
	Certifications  []CertificationEntry  `json:"certifications,omitempty"`
	Projects        []ProjectEntry        `json:"projects,omitempty"`
	Languages       []LanguageEntry       `json:"languages,omitempty"`
	Recommendations []RecommendationEntry `json:"recommendations,omitempty"`
	Volunteer       []VolunteerEntry      `json:"volunteer,omitempty"`
	Honors          []HonorEntry          `json:"honors,omitempty"`
	Publications    []PublicationEntry    `json:"publications,omitempty"`

	ProfileURL string    `json:"profileUrl,omitempty"`
	ScrapedAt  time.Time `json:"scrapedAt"`
}

// Validate returns an error if the record is missing its identity field.
// A record without a name is the one fatal assembly outcome; every section
// is allowed to be empty.
func (r *ProfileRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	return nil
}

// ContactInfo holds direct contact identifiers. All fields are optional;
// the redactor removes or masks them depending on the active policy.
type ContactInfo struct {
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Website    string `json:"website,omitempty"`
}

// ExperienceEntry is one role at one employer.
//
// Date fallback invariant: when neither Dates.Start nor Dates.End could be
// parsed, Dates.Raw retains the captured duration text verbatim so the entry
// never silently loses its only date information.
type ExperienceEntry struct {
	Title       string    `json:"title"`
	Employer    string    `json:"employer"`
	Location    string    `json:"location,omitempty"`
	Dates       DateRange `json:"dates"`
	Description string    `json:"description,omitempty"`

	// EmployerUnresolved marks entries whose employer field captured an
	// employment-type label (e.g. "Freelance") instead of a real name.
	// The normalizer never guesses a replacement.
	EmployerUnresolved bool `json:"employerUnresolved,omitempty"`
}

// Validate returns an error if the entry has no identity fields at all.
func (e *ExperienceEntry) Validate() error {
	if e.Title == "" && e.Employer == "" {
		return Errorf(EINVALID, "experience entry requires a title or employer")
	}
	return nil
}

// EmployerGroup groups experience entries sharing a cleaned employer name.
// Derived by the normalizer, never scraped directly. Roles are ordered most
// recent first.
type EmployerGroup struct {
	Employer   string            `json:"employer"`
	Unresolved bool              `json:"unresolved,omitempty"`
	Roles      []ExperienceEntry `json:"roles"`
}

// SkillEntry is one skill, unique within a record by case-insensitive name.
type SkillEntry struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category,omitempty"`

	// Endorsements is nil when no endorsement count was present. Zero is a
	// real count; absence is not.
	Endorsements *int `json:"endorsements,omitempty"`
}

// EducationEntry is one school attendance record.
type EducationEntry struct {
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree,omitempty"`
	FieldOfStudy string    `json:"fieldOfStudy,omitempty"`
	Dates        DateRange `json:"dates"`
	Description  string    `json:"description,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *EducationEntry) Validate() error {
	if e.Institution == "" {
		return Errorf(EINVALID, "education entry requires an institution")
	}
	return nil
}

// CertificationEntry is one license or certification.
type CertificationEntry struct {
	Name         string    `json:"name"`
	Issuer       string    `json:"issuer,omitempty"`
	Dates        DateRange `json:"dates"`
	CredentialID string    `json:"credentialId,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *CertificationEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "certification entry requires a name")
	}
	return nil
}

// ProjectEntry is one project.
type ProjectEntry struct {
	Name        string    `json:"name"`
	Dates       DateRange `json:"dates"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *ProjectEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "project entry requires a name")
	}
	return nil
}

// LanguageEntry is one spoken language with optional proficiency.
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *LanguageEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "language entry requires a name")
	}
	return nil
}

// RecommendationEntry is one received recommendation.
type RecommendationEntry struct {
	Author   string `json:"author"`
	Relation string `json:"relation,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *RecommendationEntry) Validate() error {
	if e.Author == "" {
		return Errorf(EINVALID, "recommendation entry requires an author")
	}
	return nil
}

// VolunteerEntry is one volunteer role.
type VolunteerEntry struct {
	Organization string    `json:"organization"`
	Role         string    `json:"role,omitempty"`
	Dates        DateRange `json:"dates"`
	Description  string    `json:"description,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *VolunteerEntry) Validate() error {
	if e.Organization == "" {
		return Errorf(EINVALID, "volunteer entry requires an organization")
	}
	return nil
}

// HonorEntry is one honor or award.
type HonorEntry struct {
	Title       string    `json:"title"`
	Issuer      string    `json:"issuer,omitempty"`
	Dates       DateRange `json:"dates"`
	Description string    `json:"description,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *HonorEntry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "honor entry requires a title")
	}
	return nil
}

// PublicationEntry is one publication.
type PublicationEntry struct {
	Title     string    `json:"title"`
	Publisher string    `json:"publisher,omitempty"`
	Dates     DateRange `json:"dates"`
	URL       string    `json:"url,omitempty"`
}

// Validate returns an error if the entry is missing its identity field.
func (e *PublicationEntry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "publication entry requires a title")
	}
	return nil
}
