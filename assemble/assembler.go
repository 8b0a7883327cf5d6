// Package assemble orchestrates profile assembly: navigation across section
// pages, extraction, and normalization into one ProfileRecord.
//
// Sections are processed sequentially; navigation is session-wide and
// non-reentrant, so nothing here runs in parallel. Each step has a bounded
// wait, and one section's failure never blocks another's.
package assemble

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/goquery"
	"github.com/aleksw/profgen/normalize"
)

// DefaultProfileURL is the session owner's own profile.
const DefaultProfileURL = "https://www.linkedin.com/in/me/"

// SectionState tracks where a section ended up in the assembly state
// machine.
type SectionState string

// Section states. The happy path is NotStarted -> Navigated -> Extracted ->
// Normalized; a failed navigation takes NotStarted -> FallbackExtracted ->
// Normalized; a section that yielded nothing ends Skipped.
const (
	StateNotStarted        SectionState = "not_started"
	StateNavigated         SectionState = "navigated"
	StateExtracted         SectionState = "extracted"
	StateFallbackExtracted SectionState = "fallback_extracted"
	StateNormalized        SectionState = "normalized"
	StateSkipped           SectionState = "skipped"
)

// SectionStatus reports one section's outcome.
type SectionStatus struct {
	Section string
	State   SectionState
	Entries int
}

// Assembler builds one ProfileRecord per run. It is the record's only
// mutator; downstream consumers treat the record as read-only.
type Assembler struct {
	Session    profgen.Session
	Extractor  profgen.Extractor
	Normalizer *normalize.Normalizer
	Classifier profgen.SkillClassifier
	Limiter    *NavLimiter

	// Timeout bounds each navigation step. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration

	// RetryDelays configure top-level navigation retries.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// section binds a detail-page path and entry spec to the normalization pass
// that applies its entries to the record.
type section struct {
	name  string
	path  string
	spec  profgen.EntrySpec
	apply func(ctx context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int
}

func sections() []section {
	return []section{
		{
			name: "experience", path: "experience", spec: goquery.ExperienceSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Experience = a.Normalizer.Experience(raws)
				return len(rec.Experience)
			},
		},
		{
			name: "skills", path: "skills", spec: goquery.SkillsSpec(),
			apply: func(ctx context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Skills = a.Normalizer.Skills(ctx, raws, a.Classifier)
				return len(rec.Skills)
			},
		},
		{
			name: "education", path: "education", spec: goquery.EducationSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Education = a.Normalizer.Education(raws)
				return len(rec.Education)
			},
		},
		{
			name: "certifications", path: "certifications", spec: goquery.CertificationsSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Certifications = a.Normalizer.Certifications(raws)
				return len(rec.Certifications)
			},
		},
		{
			name: "projects", path: "projects", spec: goquery.ProjectsSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Projects = a.Normalizer.Projects(raws)
				return len(rec.Projects)
			},
		},
		{
			name: "languages", path: "languages", spec: goquery.LanguagesSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Languages = a.Normalizer.Languages(raws)
				return len(rec.Languages)
			},
		},
		{
			name: "recommendations", path: "recommendations", spec: goquery.RecommendationsSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Recommendations = a.Normalizer.Recommendations(raws)
				return len(rec.Recommendations)
			},
		},
		{
			name: "volunteer", path: "volunteering-experiences", spec: goquery.VolunteerSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Volunteer = a.Normalizer.Volunteer(raws)
				return len(rec.Volunteer)
			},
		},
		{
			name: "honors", path: "honors", spec: goquery.HonorsSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Honors = a.Normalizer.Honors(raws)
				return len(rec.Honors)
			},
		},
		{
			name: "publications", path: "publications", spec: goquery.PublicationsSpec(),
			apply: func(_ context.Context, a *Assembler, raws []profgen.RawEntry, rec *profgen.ProfileRecord) int {
				rec.Publications = a.Normalizer.Publications(raws)
				return len(rec.Publications)
			},
		},
	}
}

// Assemble navigates the profile and builds the record. Only two failures
// are fatal: the top-level profile page being unreachable, and the name
// being unobtainable from it. Everything else degrades to empty sections.
func (a *Assembler) Assemble(ctx context.Context, profileURL string) (*profgen.ProfileRecord, []SectionStatus, error) {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if profileURL == "" {
		profileURL = DefaultProfileURL
	}

	overviewHTML, err := a.navigateTop(ctx, profileURL)
	if err != nil {
		return nil, nil, err
	}

	rec := &profgen.ProfileRecord{
		ProfileURL: profileURL,
		ScrapedAt:  time.Now().UTC(),
	}
	if err := a.identity(overviewHTML, rec); err != nil {
		return nil, nil, err
	}

	statuses := make([]SectionStatus, 0, len(sections())+1)
	for _, sec := range sections() {
		if err := ctx.Err(); err != nil {
			// External abort: the partial record is discarded by the
			// caller, never persisted.
			return nil, statuses, err
		}
		statuses = append(statuses, a.assembleSection(ctx, sec, profileURL, overviewHTML, rec, logger))
	}

	statuses = append(statuses, a.assembleContact(ctx, profileURL, rec, logger))

	return rec, statuses, nil
}

// navigateTop loads the profile overview with retries. Failure here is
// fatal: without the overview there is no identity data at all.
func (a *Assembler) navigateTop(ctx context.Context, profileURL string) (string, error) {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := navigateWithRetry(ctx, profileURL, a.navigate, delays, func(attempt int, err error) {
		logger.Warn("retrying profile navigation", "attempt", attempt, "err", err)
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", profgen.Errorf(profgen.EUNAVAILABLE, "profile page unreachable: %v", err)
	}
	return html, nil
}

// identity extracts the name, headline, location, and summary from the
// overview. A missing name is the one fatal extraction outcome.
func (a *Assembler) identity(overviewHTML string, rec *profgen.ProfileRecord) error {
	name, err := a.Extractor.ExtractField(overviewHTML, goquery.NameSpec())
	if err != nil {
		return err
	}
	if !name.Found {
		return profgen.Errorf(profgen.EUNAVAILABLE, "profile name could not be extracted by any strategy")
	}
	rec.Name = strings.TrimSpace(name.Value())

	if headline, err := a.Extractor.ExtractField(overviewHTML, goquery.HeadlineSpec()); err == nil && headline.Found {
		rec.Headline = strings.TrimSpace(headline.Value())
	}
	if location, err := a.Extractor.ExtractField(overviewHTML, goquery.LocationSpec()); err == nil && location.Found {
		rec.Location = strings.TrimSpace(location.Value())
	}
	if summary, err := a.Extractor.ExtractField(overviewHTML, goquery.SummarySpec()); err == nil && summary.Found {
		rec.Summary = strings.TrimSpace(strings.Join(summary.Values, "\n\n"))
	}

	return rec.Validate()
}

// assembleSection runs one section through the state machine: dedicated
// detail page first, overview fallback second, Skipped when both yield
// nothing.
func (a *Assembler) assembleSection(ctx context.Context, sec section, profileURL, overviewHTML string, rec *profgen.ProfileRecord, logger *slog.Logger) SectionStatus {
	status := SectionStatus{Section: sec.name, State: StateNotStarted}

	sourceHTML := overviewHTML
	if html, err := a.navigate(ctx, detailURL(profileURL, sec.path)); err == nil {
		status.State = StateNavigated
		sourceHTML = html
	} else {
		logger.Warn("section page unreachable, falling back to overview",
			"section", sec.name, "err", err)
	}

	raws, err := a.Extractor.ExtractEntries(sourceHTML, sec.spec)
	if err != nil || len(raws) == 0 {
		if status.State == StateNavigated {
			// The detail page rendered but yielded nothing; the overview
			// may still carry the section.
			raws, err = a.Extractor.ExtractEntries(overviewHTML, sec.spec)
		}
		if err != nil || len(raws) == 0 {
			status.State = StateSkipped
			logger.Info("section skipped", "section", sec.name, "err", err)
			return status
		}
		status.State = StateFallbackExtracted
	} else if status.State == StateNavigated {
		status.State = StateExtracted
	} else {
		status.State = StateFallbackExtracted
	}

	status.Entries = sec.apply(ctx, a, raws, rec)
	status.State = StateNormalized
	return status
}

// assembleContact pulls the contact-info overlay. Contact data is optional;
// any failure leaves the record's contact empty.
func (a *Assembler) assembleContact(ctx context.Context, profileURL string, rec *profgen.ProfileRecord, logger *slog.Logger) SectionStatus {
	status := SectionStatus{Section: "contact", State: StateNotStarted}

	html, err := a.navigate(ctx, overlayURL(profileURL, "contact-info"))
	if err != nil {
		status.State = StateSkipped
		logger.Info("contact overlay unreachable", "err", err)
		return status
	}
	status.State = StateNavigated

	raws, err := a.Extractor.ExtractEntries(html, goquery.ContactSpec())
	if err != nil || len(raws) == 0 {
		status.State = StateSkipped
		return status
	}

	rec.Contact = a.Normalizer.Contact(raws)
	rec.Contact.ProfileURL = profileURL
	status.Entries = len(raws)
	status.State = StateNormalized
	return status
}

// navigate performs one rate-limited, time-bounded navigation.
func (a *Assembler) navigate(ctx context.Context, url string) (string, error) {
	if a.Limiter != nil {
		if err := a.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}
	return a.Session.Navigate(ctx, url)
}

func detailURL(profileURL, path string) string {
	return strings.TrimSuffix(profileURL, "/") + "/details/" + path + "/"
}

func overlayURL(profileURL, path string) string {
	return strings.TrimSuffix(profileURL, "/") + "/overlay/" + path + "/"
}
