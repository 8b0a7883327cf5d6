package profgen

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// SkillCategory labels a skill for grouped rendering.
type SkillCategory string

// Skill categories, in the order they appear in rendered documents.
const (
	CategoryProgramming  SkillCategory = "Programming Languages"
	CategoryFrameworks   SkillCategory = "Frameworks & Libraries"
	CategoryDatabases    SkillCategory = "Databases"
	CategoryCloud        SkillCategory = "Cloud Platforms"
	CategoryTools        SkillCategory = "Tools & Platforms"
	CategoryProfessional SkillCategory = "Professional Skills"
	CategoryOther        SkillCategory = "Other"
)

// CategoryOrder is the fixed display order for skill categories.
var CategoryOrder = []SkillCategory{
	CategoryProgramming,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryCloud,
	CategoryTools,
	CategoryProfessional,
	CategoryOther,
}

// SkillSet accumulates skills with case-insensitive name uniqueness.
//
// A later duplicate keeps the first occurrence's casing and category but
// overwrites the stored endorsement count when the new one is higher or the
// stored one is absent.
type SkillSet struct {
	entries []SkillEntry
	index   map[string]int
}

// NewSkillSet returns an empty SkillSet.
func NewSkillSet() *SkillSet {
	return &SkillSet{index: make(map[string]int)}
}

// Add inserts a skill, enforcing uniqueness at insertion. Entries with empty
// names are ignored.
func (s *SkillSet) Add(entry SkillEntry) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return
	}
	entry.Name = name

	key := strings.ToLower(name)
	if i, ok := s.index[key]; ok {
		stored := &s.entries[i]
		if entry.Endorsements != nil &&
			(stored.Endorsements == nil || *entry.Endorsements > *stored.Endorsements) {
			stored.Endorsements = entry.Endorsements
		}
		if stored.Category == "" {
			stored.Category = entry.Category
		}
		return
	}

	s.index[key] = len(s.entries)
	s.entries = append(s.entries, entry)
}

// Entries returns the accumulated skills in insertion order.
func (s *SkillSet) Entries() []SkillEntry {
	return s.entries
}

// Len returns the number of unique skills.
func (s *SkillSet) Len() int {
	return len(s.entries)
}

var (
	endorsementLabelRe = regexp.MustCompile(`(?i)^\s*(\d+)\s+endorsements?\b`)
	endorsementParenRe = regexp.MustCompile(`\((\d+)\)\s*$`)
)

// ParseEndorsements extracts an endorsement count from adjacent label text
// ("12 endorsements") or a trailing parenthesized integer ("Python (12)").
// Returns nil when no count is present: absence means "no endorsement
// count", not zero, and non-numeric annotations are never coerced.
func ParseEndorsements(text string) *int {
	m := endorsementLabelRe.FindStringSubmatch(text)
	if m == nil {
		m = endorsementParenRe.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// SkillClassifier assigns categories to skill names. Implementations may be
// heuristic or model-backed; names absent from the returned map keep their
// existing category.
type SkillClassifier interface {
	Classify(ctx context.Context, names []string) (map[string]SkillCategory, error)
}

// KeywordClassifier categorizes skills with a fixed keyword table. It is the
// default classifier and needs no network access.
type KeywordClassifier struct{}

var _ SkillClassifier = (*KeywordClassifier)(nil)

var skillKeywords = map[string]SkillCategory{
	"python": CategoryProgramming, "javascript": CategoryProgramming,
	"typescript": CategoryProgramming, "java": CategoryProgramming,
	"go": CategoryProgramming, "golang": CategoryProgramming,
	"c++": CategoryProgramming, "c#": CategoryProgramming,
	"rust": CategoryProgramming, "ruby": CategoryProgramming,
	"php": CategoryProgramming, "kotlin": CategoryProgramming,
	"swift": CategoryProgramming, "scala": CategoryProgramming,

	"react": CategoryFrameworks, "angular": CategoryFrameworks,
	"vue.js": CategoryFrameworks, "django": CategoryFrameworks,
	"flask": CategoryFrameworks, "spring": CategoryFrameworks,
	"express.js": CategoryFrameworks, "tensorflow": CategoryFrameworks,
	"pytorch": CategoryFrameworks, "pandas": CategoryFrameworks,
	"numpy": CategoryFrameworks,

	"postgresql": CategoryDatabases, "mysql": CategoryDatabases,
	"mongodb": CategoryDatabases, "redis": CategoryDatabases,
	"elasticsearch": CategoryDatabases, "sqlite": CategoryDatabases,
	"cassandra": CategoryDatabases, "dynamodb": CategoryDatabases,

	"aws": CategoryCloud, "azure": CategoryCloud,
	"gcp": CategoryCloud, "google cloud": CategoryCloud,
	"kubernetes": CategoryCloud, "docker": CategoryCloud,
	"terraform": CategoryCloud,

	"git": CategoryTools, "jenkins": CategoryTools,
	"jira": CategoryTools, "confluence": CategoryTools,
	"figma": CategoryTools, "linux": CategoryTools,

	"leadership": CategoryProfessional, "communication": CategoryProfessional,
	"project management": CategoryProfessional, "mentoring": CategoryProfessional,
	"agile": CategoryProfessional, "scrum": CategoryProfessional,
}

// Classify maps each name to a category. Unknown names map to CategoryOther.
func (c *KeywordClassifier) Classify(_ context.Context, names []string) (map[string]SkillCategory, error) {
	result := make(map[string]SkillCategory, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if cat, ok := skillKeywords[key]; ok {
			result[name] = cat
			continue
		}
		result[name] = CategoryOther
	}
	return result, nil
}

// GroupSkillsByCategory buckets skills in CategoryOrder, preserving the
// input order within each bucket. Categories with no skills are omitted.
// Uncategorized skills fall under CategoryOther.
func GroupSkillsByCategory(skills []SkillEntry) []SkillGroup {
	buckets := make(map[SkillCategory][]SkillEntry)
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = CategoryOther
		}
		buckets[cat] = append(buckets[cat], s)
	}

	groups := make([]SkillGroup, 0, len(buckets))
	for _, cat := range CategoryOrder {
		if entries, ok := buckets[cat]; ok {
			groups = append(groups, SkillGroup{Category: cat, Skills: entries})
		}
	}
	return groups
}

// SkillGroup is one rendered category of skills.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []SkillEntry  `json:"skills"`
}
