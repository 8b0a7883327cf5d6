package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func sampleRecord() *profgen.ProfileRecord {
	return &profgen.ProfileRecord{
		Name:       "Ada Example",
		Headline:   "Staff Engineer",
		Location:   "Warsaw, Poland",
		Summary:    "Distributed systems engineer.",
		ProfileURL: "https://example.com/in/ada/",
		ScrapedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Contact: profgen.ContactInfo{
			Email: "ada@example.com",
		},
		Experience: []profgen.ExperienceEntry{
			{
				Title:    "Staff Engineer",
				Employer: "Initech",
				Location: "Remote",
				Dates: profgen.DateRange{
					Start:   profgen.Date{Year: 2021, Month: time.January},
					Ongoing: true,
				},
				Description: "Leads the platform team.",
			},
			{
				Title:    "Engineer",
				Employer: "Initech",
				Dates: profgen.DateRange{
					Start: profgen.Date{Year: 2018, Month: time.March},
					End:   profgen.Date{Year: 2020, Month: time.December},
				},
			},
		},
		Skills: []profgen.SkillEntry{
			{Name: "Go", Category: profgen.CategoryProgramming, Endorsements: intPtr(42)},
			{Name: "Leadership", Category: profgen.CategoryProfessional},
		},
		Education: []profgen.EducationEntry{
			{
				Institution:  "MIT",
				Degree:       "Master of Science",
				FieldOfStudy: "Computer Science",
				Dates: profgen.DateRange{
					Start: profgen.Date{Year: 2014},
					End:   profgen.Date{Year: 2016},
				},
			},
		},
	}
}

func TestFor(t *testing.T) {
	t.Parallel()

	for _, format := range []profgen.Format{profgen.FormatMarkdown, profgen.FormatHTML, profgen.FormatJSON} {
		r, err := render.For(format)
		require.NoError(t, err, "format %q", format)
		require.NotNil(t, r)
	}

	_, err := render.For(profgen.Format("pdf"))
	require.Error(t, err)
	assert.Equal(t, profgen.ECONFIG, profgen.ErrorCode(err))
}

func TestMarkdown_Render(t *testing.T) {
	t.Parallel()

	t.Run("full record", func(t *testing.T) {
		t.Parallel()

		out, err := (&render.Markdown{}).Render(sampleRecord())
		require.NoError(t, err)
		doc := string(out)

		assert.True(t, strings.HasPrefix(doc, "# Ada Example\n"))
		assert.Contains(t, doc, "Staff Engineer")
		assert.Contains(t, doc, "## Contact")
		assert.Contains(t, doc, "- Email: ada@example.com")
		assert.Contains(t, doc, "## Summary")

		// Roles at the same employer share one employer heading.
		assert.Equal(t, 1, strings.Count(doc, "### Initech"))
		assert.Contains(t, doc, "#### Staff Engineer")
		assert.Contains(t, doc, "#### Engineer")
		assert.Contains(t, doc, "Jan 2021 - Present | Remote")
		assert.Contains(t, doc, "Mar 2018 - Dec 2020")

		assert.Contains(t, doc, "## Skills")
		assert.Contains(t, doc, "- Go (42 endorsements)")
		assert.Contains(t, doc, "- Leadership\n")

		assert.Contains(t, doc, "### MIT")
		assert.Contains(t, doc, "Master of Science, Computer Science")
	})

	t.Run("unresolved employer renders under a neutral heading", func(t *testing.T) {
		t.Parallel()

		rec := sampleRecord()
		rec.Experience = []profgen.ExperienceEntry{
			{Title: "Consultant", Employer: "Freelance", EmployerUnresolved: true},
		}

		out, err := (&render.Markdown{}).Render(rec)
		require.NoError(t, err)
		assert.Contains(t, string(out), "### Independent (Freelance)")
	})

	t.Run("empty sections are omitted", func(t *testing.T) {
		t.Parallel()

		rec := &profgen.ProfileRecord{
			Name:       "Ada Example",
			ProfileURL: "https://example.com/in/ada/",
			ScrapedAt:  time.Now(),
		}

		out, err := (&render.Markdown{}).Render(rec)
		require.NoError(t, err)
		doc := string(out)

		assert.Equal(t, "# Ada Example\n", doc)
		assert.NotContains(t, doc, "## Skills")
		assert.NotContains(t, doc, "## Experience")
		assert.NotContains(t, doc, "## Contact")
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := (&render.Markdown{}).Render(&profgen.ProfileRecord{})
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
	})
}

func TestHTML_Render(t *testing.T) {
	t.Parallel()

	t.Run("full record", func(t *testing.T) {
		t.Parallel()

		out, err := (&render.HTML{}).Render(sampleRecord())
		require.NoError(t, err)
		doc := string(out)

		assert.Contains(t, doc, "<!DOCTYPE html>")
		assert.Contains(t, doc, "<title>Ada Example</title>")
		assert.Contains(t, doc, "<h1>Ada Example</h1>")
		assert.Contains(t, doc, "<h2>Experience</h2>")
		assert.Contains(t, doc, "Initech")
		assert.Contains(t, doc, "ada@example.com")
	})

	t.Run("empty sections are omitted", func(t *testing.T) {
		t.Parallel()

		rec := &profgen.ProfileRecord{
			Name:       "Ada Example",
			ProfileURL: "https://example.com/in/ada/",
			ScrapedAt:  time.Now(),
		}

		out, err := (&render.HTML{}).Render(rec)
		require.NoError(t, err)
		doc := string(out)

		assert.Contains(t, doc, "<h1>Ada Example</h1>")
		assert.NotContains(t, doc, "<h2>")
	})
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	out, err := (&render.JSON{}).Render(sampleRecord())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))

	var decoded profgen.ProfileRecord
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Ada Example", decoded.Name)
	require.Len(t, decoded.Skills, 2)
	require.NotNil(t, decoded.Skills[0].Endorsements)
	assert.Equal(t, 42, *decoded.Skills[0].Endorsements)
}
