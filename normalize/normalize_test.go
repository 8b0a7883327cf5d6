package normalize_test

import (
	"context"
	"testing"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/htmltomarkdown"
	"github.com/aleksw/profgen/mock"
	"github.com/aleksw/profgen/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawEntry builds a RawEntry whose fields each carry the given fragments.
func rawEntry(section string, fields map[string][]string) profgen.RawEntry {
	entry := profgen.RawEntry{
		Section: section,
		Fields:  make(map[string]profgen.FieldResult, len(fields)),
	}
	for name, values := range fields {
		entry.Fields[name] = profgen.FieldResult{Found: true, Values: values}
	}
	return entry
}

func TestNormalizer_Experience(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	t.Run("builds a complete entry", func(t *testing.T) {
		t.Parallel()

		entries := n.Experience([]profgen.RawEntry{
			rawEntry("experience", map[string][]string{
				profgen.FieldTitle:       {"Staff Engineer"},
				profgen.FieldSubtitle:    {"Acme Corp · Full-time"},
				profgen.FieldCaption:     {"Jan 2021 - Present · 3 yrs", "Warsaw, Poland"},
				profgen.FieldDescription: {"Leads the platform team."},
			}),
		})

		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "Staff Engineer", e.Title)
		assert.Equal(t, "Acme Corp", e.Employer)
		assert.False(t, e.EmployerUnresolved)
		assert.Equal(t, "Warsaw, Poland", e.Location)
		assert.Equal(t, profgen.Date{Year: 2021, Month: time.January}, e.Dates.Start)
		assert.True(t, e.Dates.Ongoing)
		assert.Equal(t, "Leads the platform team.", e.Description)
	})

	t.Run("flags employment-type employer as unresolved", func(t *testing.T) {
		t.Parallel()

		entries := n.Experience([]profgen.RawEntry{
			rawEntry("experience", map[string][]string{
				profgen.FieldTitle:    {"Consultant"},
				profgen.FieldSubtitle: {"Freelance"},
			}),
		})

		require.Len(t, entries, 1)
		assert.Equal(t, "Freelance", entries[0].Employer)
		assert.True(t, entries[0].EmployerUnresolved)
	})

	t.Run("retains unparseable dates as raw text", func(t *testing.T) {
		t.Parallel()

		entries := n.Experience([]profgen.RawEntry{
			rawEntry("experience", map[string][]string{
				profgen.FieldTitle:   {"Engineer"},
				profgen.FieldCaption: {"a while back"},
			}),
		})

		require.Len(t, entries, 1)
		assert.Equal(t, "a while back", entries[0].Dates.Raw)
		assert.Equal(t, profgen.ConfidenceLow, entries[0].Dates.Confidence)
	})

	t.Run("skips entries with no title or employer", func(t *testing.T) {
		t.Parallel()

		entries := n.Experience([]profgen.RawEntry{
			rawEntry("experience", map[string][]string{
				profgen.FieldCaption: {"2019 - 2020"},
			}),
			rawEntry("experience", map[string][]string{
				profgen.FieldTitle: {"Engineer"},
			}),
		})

		require.Len(t, entries, 1)
		assert.Equal(t, "Engineer", entries[0].Title)
	})

	t.Run("deduplicates repeated entries", func(t *testing.T) {
		t.Parallel()

		raw := rawEntry("experience", map[string][]string{
			profgen.FieldTitle:    {"Engineer"},
			profgen.FieldSubtitle: {"Acme"},
			profgen.FieldCaption:  {"2019 - 2020"},
		})
		entries := n.Experience([]profgen.RawEntry{raw, raw})
		assert.Len(t, entries, 1)
	})

	t.Run("converts description HTML to markdown", func(t *testing.T) {
		t.Parallel()

		withConverter := normalize.New(htmltomarkdown.NewConverter(), nil)
		entries := withConverter.Experience([]profgen.RawEntry{
			rawEntry("experience", map[string][]string{
				profgen.FieldTitle:       {"Engineer"},
				profgen.FieldDescription: {"Built <strong>fast</strong> pipelines.<br>Shipped weekly."},
			}),
		})

		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Description, "**fast**")
		assert.NotContains(t, entries[0].Description, "<br>")
	})
}

func TestNormalizer_Skills(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)
	ctx := context.Background()

	t.Run("builds unique skills with endorsements and categories", func(t *testing.T) {
		t.Parallel()

		classifier := &mock.Classifier{
			ClassifyFn: func(_ context.Context, names []string) (map[string]profgen.SkillCategory, error) {
				return map[string]profgen.SkillCategory{"Python": profgen.CategoryProgramming}, nil
			},
		}

		skills := n.Skills(ctx, []profgen.RawEntry{
			rawEntry("skills", map[string][]string{
				profgen.FieldTitle:        {"Python"},
				profgen.FieldEndorsements: {"5 endorsements"},
			}),
			rawEntry("skills", map[string][]string{
				profgen.FieldTitle:        {"python"},
				profgen.FieldEndorsements: {"9 endorsements"},
			}),
		}, classifier)

		require.Len(t, skills, 1)
		assert.Equal(t, "Python", skills[0].Name)
		assert.Equal(t, 9, *skills[0].Endorsements)
		assert.Equal(t, profgen.CategoryProgramming, skills[0].Category)
	})

	t.Run("classifier failure leaves skills uncategorized", func(t *testing.T) {
		t.Parallel()

		classifier := &mock.Classifier{
			ClassifyFn: func(_ context.Context, _ []string) (map[string]profgen.SkillCategory, error) {
				return nil, profgen.Errorf(profgen.EUNAVAILABLE, "model unavailable")
			},
		}

		skills := n.Skills(ctx, []profgen.RawEntry{
			rawEntry("skills", map[string][]string{profgen.FieldTitle: {"Go"}}),
		}, classifier)

		require.Len(t, skills, 1)
		assert.Empty(t, skills[0].Category)
	})

	t.Run("non-numeric endorsement text means no count", func(t *testing.T) {
		t.Parallel()

		skills := n.Skills(ctx, []profgen.RawEntry{
			rawEntry("skills", map[string][]string{
				profgen.FieldTitle:        {"Go"},
				profgen.FieldEndorsements: {"endorsed by colleagues"},
			}),
		}, nil)

		require.Len(t, skills, 1)
		assert.Nil(t, skills[0].Endorsements)
	})
}

func TestNormalizer_Education(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	entries := n.Education([]profgen.RawEntry{
		rawEntry("education", map[string][]string{
			profgen.FieldTitle:    {"University of Warsaw"},
			profgen.FieldSubtitle: {"Master of Science, Computer Science"},
			profgen.FieldCaption:  {"2014 - 2016"},
		}),
		rawEntry("education", map[string][]string{
			profgen.FieldSubtitle: {"no institution"},
		}),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "University of Warsaw", entries[0].Institution)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].FieldOfStudy)
	assert.Equal(t, 2014, entries[0].Dates.Start.Year)
}

func TestNormalizer_Certifications(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	entries := n.Certifications([]profgen.RawEntry{
		rawEntry("certifications", map[string][]string{
			profgen.FieldTitle:    {"Cloud Architect"},
			profgen.FieldSubtitle: {"Example Cloud"},
			profgen.FieldCaption:  {"Issued Jan 2023", "Credential ID ABC-123"},
		}),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Cloud Architect", entries[0].Name)
	assert.Equal(t, "Example Cloud", entries[0].Issuer)
	assert.Equal(t, "ABC-123", entries[0].CredentialID)
	assert.Equal(t, profgen.Date{Year: 2023, Month: time.January}, entries[0].Dates.Start)
}

func TestNormalizer_Languages(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	entries := n.Languages([]profgen.RawEntry{
		rawEntry("languages", map[string][]string{
			profgen.FieldTitle:    {"Polish"},
			profgen.FieldSubtitle: {"Native or bilingual proficiency"},
		}),
		rawEntry("languages", map[string][]string{
			profgen.FieldTitle: {"polish"},
		}),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Polish", entries[0].Name)
	assert.Equal(t, "Native or bilingual proficiency", entries[0].Proficiency)
}

func TestNormalizer_Publications(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	entries := n.Publications([]profgen.RawEntry{
		rawEntry("publications", map[string][]string{
			profgen.FieldTitle:    {"Scaling Pipelines"},
			profgen.FieldSubtitle: {"IEEE Software · Mar 2021"},
			profgen.FieldURL:      {"https://example.com/paper"},
		}),
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Scaling Pipelines", entries[0].Title)
	assert.Equal(t, "IEEE Software", entries[0].Publisher)
	assert.Equal(t, profgen.Date{Year: 2021, Month: time.March}, entries[0].Dates.Start)
	assert.Equal(t, "https://example.com/paper", entries[0].URL)
}

func TestNormalizer_Contact(t *testing.T) {
	t.Parallel()

	n := normalize.New(nil, nil)

	contact := n.Contact([]profgen.RawEntry{
		rawEntry("contact", map[string][]string{
			profgen.FieldTitle:    {"Email"},
			profgen.FieldSubtitle: {"mailto:ada@example.com"},
		}),
		rawEntry("contact", map[string][]string{
			profgen.FieldTitle:    {"Phone"},
			profgen.FieldSubtitle: {"tel:+1 555 123 4567"},
		}),
		rawEntry("contact", map[string][]string{
			profgen.FieldTitle:    {"Website"},
			profgen.FieldSubtitle: {"https://ada.example.com"},
		}),
		rawEntry("contact", map[string][]string{
			profgen.FieldTitle:    {"Your Profile"},
			profgen.FieldSubtitle: {"https://www.linkedin.com/in/ada"},
		}),
	})

	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Equal(t, "+1 555 123 4567", contact.Phone)
	assert.Equal(t, "https://ada.example.com", contact.Website)
	assert.Equal(t, "https://www.linkedin.com/in/ada", contact.ProfileURL)
}
