package profgen_test

import (
	"testing"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanState(now time.Time) *profgen.AuditState {
	return &profgen.AuditState{
		RedactionApplied: true,
		RedactionLevel:   profgen.RedactionNormal,
		OutputFiles:      []string{"output/resume.md"},
		IgnoreFileExists: true,
		IgnorePatterns:   []string{"profile_raw.json", "*_raw.json"},
		RawDataPatterns:  []string{"profile_raw.json", "*_raw.json"},
		Retention:        time.Hour,
		Now:              now,
	}
}

func TestAuditor_Audit(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("clean state passes with no findings", func(t *testing.T) {
		t.Parallel()

		auditor := profgen.NewAuditor(profgen.SeverityMedium)
		report := auditor.Audit(cleanState(now))

		assert.True(t, report.Pass)
		assert.Empty(t, report.Findings)
		assert.Equal(t, profgen.SeverityMedium, report.MinSeverity)
	})

	t.Run("stale raw file is a critical fixable finding", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-2 * time.Hour)},
		}

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		assert.False(t, report.Pass)
		require.Len(t, report.Findings, 1)
		assert.Equal(t, "raw-data-retention", report.Findings[0].Rule)
		assert.Equal(t, profgen.SeverityCritical, report.Findings[0].Severity)
		assert.True(t, report.Findings[0].AutoFixable)
	})

	t.Run("fresh raw file within retention is not flagged", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-30 * time.Minute)},
		}

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)
		assert.True(t, report.Pass)
	})

	t.Run("unredacted output is a high finding", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RedactionApplied = false

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		assert.False(t, report.Pass)
		require.Len(t, report.Findings, 1)
		assert.Equal(t, "redaction-before-output", report.Findings[0].Rule)
		assert.Equal(t, profgen.SeverityHigh, report.Findings[0].Severity)
	})

	t.Run("stale raw data without redaction yields both findings in rule order", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RedactionApplied = false
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-2 * time.Hour)},
		}

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		assert.False(t, report.Pass)
		require.Len(t, report.Findings, 2)
		assert.Equal(t, profgen.SeverityCritical, report.Findings[0].Severity)
		assert.Equal(t, "raw-data-retention", report.Findings[0].Rule)
		assert.Equal(t, profgen.SeverityHigh, report.Findings[1].Severity)
		assert.Equal(t, "redaction-before-output", report.Findings[1].Rule)
	})

	t.Run("output colocated with raw data is flagged", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "output/profile_raw.json", ModTime: now},
		}

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		assert.False(t, report.Pass)
		var rules []string
		for _, f := range report.Findings {
			rules = append(rules, f.Rule)
		}
		assert.Contains(t, rules, "output-colocated-with-raw")
	})

	t.Run("missing ignore patterns are medium findings", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.IgnorePatterns = []string{"*_raw.json"}

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		assert.False(t, report.Pass)
		require.Len(t, report.Findings, 1)
		assert.Equal(t, "ignore-file-raw-pattern", report.Findings[0].Rule)
		assert.Equal(t, profgen.SeverityMedium, report.Findings[0].Severity)
	})

	t.Run("long retention window is a low finding only", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.Retention = 48 * time.Hour

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		// Low severity is below the medium threshold, so the audit still
		// passes while reporting the finding.
		assert.True(t, report.Pass)
		require.Len(t, report.Findings, 1)
		assert.Equal(t, "retention-window", report.Findings[0].Rule)
	})

	t.Run("severity threshold controls the verdict", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.Retention = 48 * time.Hour

		assert.False(t, profgen.NewAuditor(profgen.SeverityLow).Audit(state).Pass)
		assert.True(t, profgen.NewAuditor(profgen.SeverityMedium).Audit(state).Pass)
	})

	t.Run("findings keep rule registration order", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RedactionApplied = false
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-2 * time.Hour)},
		}
		state.Retention = time.Hour

		report := profgen.NewAuditor(profgen.SeverityMedium).Audit(state)

		require.Len(t, report.Findings, 2)
		assert.Equal(t, "raw-data-retention", report.Findings[0].Rule)
		assert.Equal(t, "redaction-before-output", report.Findings[1].Rule)
	})
}

func TestAuditor_AuditAndFix(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("removes stale raw files and reports every fix", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-2 * time.Hour)},
			{Path: "raws/backup_raw.json", ModTime: now.Add(-3 * time.Hour)},
		}

		var removed []string
		fixer := &mock.Fixer{
			RemoveRawFileFn: func(path string) error {
				removed = append(removed, path)
				return nil
			},
		}

		report, err := profgen.NewAuditor(profgen.SeverityMedium).AuditAndFix(state, fixer)
		require.NoError(t, err)

		assert.Equal(t, []string{"raws/profile_raw.json", "raws/backup_raw.json"}, removed)
		require.Len(t, report.Fixes, 2)
		// The report reflects the state before fixes ran.
		assert.False(t, report.Pass)
	})

	t.Run("does not touch fresh raw files", func(t *testing.T) {
		t.Parallel()

		state := cleanState(now)
		state.RawFiles = []profgen.RawFileInfo{
			{Path: "raws/profile_raw.json", ModTime: now.Add(-10 * time.Minute)},
		}

		fixer := &mock.Fixer{
			RemoveRawFileFn: func(path string) error {
				t.Fatalf("unexpected removal of %s", path)
				return nil
			},
		}

		report, err := profgen.NewAuditor(profgen.SeverityMedium).AuditAndFix(state, fixer)
		require.NoError(t, err)
		assert.Empty(t, report.Fixes)
	})
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	sev, err := profgen.ParseSeverity("HIGH")
	require.NoError(t, err)
	assert.Equal(t, profgen.SeverityHigh, sev)

	_, err = profgen.ParseSeverity("catastrophic")
	require.Error(t, err)
	assert.Equal(t, profgen.ECONFIG, profgen.ErrorCode(err))
}
