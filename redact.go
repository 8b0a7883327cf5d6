package profgen

import (
	"regexp"
	"strings"
)

// RedactionLevel names a privacy level selectable in configuration.
type RedactionLevel string

// Redaction levels.
const (
	RedactionStrict  RedactionLevel = "strict"
	RedactionNormal  RedactionLevel = "normal"
	RedactionMinimal RedactionLevel = "minimal"
)

// ParseRedactionLevel validates a configured level string.
func ParseRedactionLevel(s string) (RedactionLevel, error) {
	switch RedactionLevel(strings.ToLower(s)) {
	case RedactionStrict:
		return RedactionStrict, nil
	case RedactionNormal:
		return RedactionNormal, nil
	case RedactionMinimal:
		return RedactionMinimal, nil
	default:
		return "", Errorf(ECONFIG, "unknown privacy level %q (want strict, normal, or minimal)", s)
	}
}

// FieldAction is what the redactor does with a field under a policy.
type FieldAction string

// Field actions.
const (
	ActionRemove FieldAction = "remove"
	ActionMask   FieldAction = "mask"
	ActionKeep   FieldAction = "keep"
)

// Masked placeholder values. Masking preserves the field's shape (an email
// stays email-shaped) and is a fixed point: masking a masked value yields
// the same value.
const (
	MaskedEmail = "redacted@example.invalid"
	MaskedPhone = "+0 000 000 0000"
	MaskedURL   = "https://example.invalid/redacted"
)

// RedactionPolicy maps field classes to actions. It is pure configuration,
// constructed once and never mutated.
type RedactionPolicy struct {
	Level RedactionLevel

	// Actions for direct contact identifiers.
	Email      FieldAction
	Phone      FieldAction
	Website    FieldAction
	ProfileURL FieldAction

	// Narrative governs free-text fields (summary, descriptions,
	// recommendation text). ActionRemove drops a field entirely when it
	// matches a sensitive keyword; ActionMask replaces embedded identifier
	// patterns with placeholders but keeps the text; ActionKeep passes
	// text through unchanged.
	Narrative FieldAction

	// Keywords are the sensitive terms scanned for in narrative fields.
	Keywords []string
}

// DefaultSensitiveKeywords flag narrative text that likely leaked
// non-public information.
var DefaultSensitiveKeywords = []string{
	"password", "secret", "api key", "token", "private key",
	"confidential", "classified", "restricted", "internal-only",
	"proprietary", "trade secret", "salary", "compensation",
}

// PolicyFor returns the built-in policy for a level.
func PolicyFor(level RedactionLevel) RedactionPolicy {
	switch level {
	case RedactionStrict:
		return RedactionPolicy{
			Level:      RedactionStrict,
			Email:      ActionRemove,
			Phone:      ActionRemove,
			Website:    ActionRemove,
			ProfileURL: ActionRemove,
			Narrative:  ActionRemove,
			Keywords:   DefaultSensitiveKeywords,
		}
	case RedactionMinimal:
		return RedactionPolicy{
			Level:      RedactionMinimal,
			Email:      ActionKeep,
			Phone:      ActionKeep,
			Website:    ActionKeep,
			ProfileURL: ActionKeep,
			Narrative:  ActionKeep,
		}
	default:
		return RedactionPolicy{
			Level:      RedactionNormal,
			Email:      ActionMask,
			Phone:      ActionMask,
			Website:    ActionMask,
			ProfileURL: ActionMask,
			Narrative:  ActionMask,
			Keywords:   DefaultSensitiveKeywords,
		}
	}
}

// TermFilter answers approximate membership queries for sensitive terms.
// False positives are acceptable (they only trigger a full scan); false
// negatives are not.
type TermFilter interface {
	Test(term string) bool
}

// Identifier patterns embedded in narrative text.
var (
	emailRe  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe  = regexp.MustCompile(`(\+?\d[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`)
	ssnRe    = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	salaryRe = regexp.MustCompile(`(?i)\$\s*\d[\d,]*(?:\.\d{2})?(?:\s*k)?`)
)

// Narrative placeholders. None of them re-match the patterns above, which
// keeps scrubbing idempotent.
const (
	maskedEmailInline  = "[email redacted]"
	maskedPhoneInline  = "[phone redacted]"
	maskedNumberInline = "[number redacted]"
	maskedAmountInline = "[amount redacted]"
)

// Redactor produces redacted copies of profile records under one policy.
// It never mutates its input; redaction is deterministic and idempotent.
type Redactor struct {
	policy    RedactionPolicy
	prefilter TermFilter
}

// NewRedactor creates a Redactor. The prefilter is optional: when set it is
// consulted per token before the full keyword scan runs.
func NewRedactor(policy RedactionPolicy, prefilter TermFilter) *Redactor {
	return &Redactor{policy: policy, prefilter: prefilter}
}

// Policy returns the active policy.
func (r *Redactor) Policy() RedactionPolicy {
	return r.policy
}

// Redact returns a redacted copy of the record.
func (r *Redactor) Redact(rec *ProfileRecord) *ProfileRecord {
	out := *rec

	out.Contact = ContactInfo{
		Email:      applyAction(r.policy.Email, rec.Contact.Email, MaskedEmail),
		Phone:      applyAction(r.policy.Phone, rec.Contact.Phone, MaskedPhone),
		Website:    applyAction(r.policy.Website, rec.Contact.Website, MaskedURL),
		ProfileURL: applyAction(r.policy.ProfileURL, rec.Contact.ProfileURL, MaskedURL),
	}
	out.ProfileURL = applyAction(r.policy.ProfileURL, rec.ProfileURL, MaskedURL)
	out.Summary = r.redactText(rec.Summary)

	out.Experience = make([]ExperienceEntry, len(rec.Experience))
	for i, e := range rec.Experience {
		e.Description = r.redactText(e.Description)
		out.Experience[i] = e
	}
	out.Education = make([]EducationEntry, len(rec.Education))
	for i, e := range rec.Education {
		e.Description = r.redactText(e.Description)
		out.Education[i] = e
	}
	out.Projects = make([]ProjectEntry, len(rec.Projects))
	for i, e := range rec.Projects {
		e.Description = r.redactText(e.Description)
		out.Projects[i] = e
	}
	out.Recommendations = make([]RecommendationEntry, len(rec.Recommendations))
	for i, e := range rec.Recommendations {
		e.Text = r.redactText(e.Text)
		out.Recommendations[i] = e
	}
	out.Volunteer = make([]VolunteerEntry, len(rec.Volunteer))
	for i, e := range rec.Volunteer {
		e.Description = r.redactText(e.Description)
		out.Volunteer[i] = e
	}
	out.Honors = make([]HonorEntry, len(rec.Honors))
	for i, e := range rec.Honors {
		e.Description = r.redactText(e.Description)
		out.Honors[i] = e
	}

	out.Skills = append([]SkillEntry(nil), rec.Skills...)
	out.Certifications = append([]CertificationEntry(nil), rec.Certifications...)
	out.Languages = append([]LanguageEntry(nil), rec.Languages...)
	out.Publications = append([]PublicationEntry(nil), rec.Publications...)

	return &out
}

func applyAction(action FieldAction, value, mask string) string {
	if value == "" {
		return ""
	}
	switch action {
	case ActionRemove:
		return ""
	case ActionMask:
		return mask
	default:
		return value
	}
}

// redactText applies the narrative action to one free-text field.
func (r *Redactor) redactText(text string) string {
	if text == "" {
		return ""
	}
	switch r.policy.Narrative {
	case ActionKeep:
		return text
	case ActionRemove:
		if r.matchesKeyword(text) {
			return ""
		}
		return scrubPatterns(text)
	default:
		return scrubPatterns(text)
	}
}

// matchesKeyword reports whether the text contains a sensitive keyword. The
// optional prefilter short-circuits the scan for clean text.
func (r *Redactor) matchesKeyword(text string) bool {
	if len(r.policy.Keywords) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	if r.prefilter != nil && !r.anyTokenInFilter(lower) {
		return false
	}
	for _, kw := range r.policy.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (r *Redactor) anyTokenInFilter(lower string) bool {
	for _, tok := range strings.FieldsFunc(lower, func(c rune) bool {
		return c == ' ' || c == '\n' || c == '\t' || c == ',' || c == '.' || c == ';'
	}) {
		if r.prefilter.Test(tok) {
			return true
		}
	}
	return false
}

// scrubPatterns replaces embedded identifiers with shape-preserving
// placeholders.
func scrubPatterns(text string) string {
	text = emailRe.ReplaceAllString(text, maskedEmailInline)
	text = ssnRe.ReplaceAllString(text, maskedNumberInline)
	text = phoneRe.ReplaceAllString(text, maskedPhoneInline)
	text = salaryRe.ReplaceAllString(text, maskedAmountInline)
	return text
}
