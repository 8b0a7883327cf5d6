package profgen

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Severity ranks a compliance finding.
type Severity int

// Severities, lowest to highest.
const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	sev, err := ParseSeverity(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ParseSeverity validates a configured severity name.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return 0, Errorf(ECONFIG, "unknown severity %q (want low, medium, high, or critical)", name)
	}
}

// RecommendedMaxRetention is the longest raw-data retention window that
// passes the audit without a finding.
const RecommendedMaxRetention = 24 * time.Hour

// Finding is one rule violation.
type Finding struct {
	Rule        string   `json:"rule"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Location    string   `json:"location,omitempty"`
	AutoFixable bool     `json:"autoFixable,omitempty"`
}

// Report is the outcome of one audit: the ordered findings plus the overall
// verdict. Findings appear in rule-registration order for reproducible
// output.
type Report struct {
	ID          string    `json:"id,omitempty"`
	AuditedAt   time.Time `json:"auditedAt"`
	MinSeverity Severity  `json:"minSeverity"`
	Findings    []Finding `json:"findings"`
	// Fixes lists remediation applied in fix mode, one line per change.
	Fixes []string `json:"fixes,omitempty"`
	Pass  bool     `json:"pass"`
}

// RawFileInfo describes one retained raw-data file on disk.
type RawFileInfo struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// AuditState is the snapshot of the record and surrounding filesystem that
// the rules inspect. It is collected once (see the fs package) so every rule
// sees the same state, and so audits can run standalone against
// previously-saved data.
type AuditState struct {
	// Record may be nil for standalone filesystem-only audits.
	Record *ProfileRecord

	// RedactionApplied reports whether a redaction policy ran before any
	// output was persisted.
	RedactionApplied bool
	RedactionLevel   RedactionLevel

	RawFiles    []RawFileInfo
	OutputFiles []string

	IgnoreFileExists bool
	IgnorePatterns   []string
	// RawDataPatterns are the version-control ignore patterns expected to
	// cover raw data files.
	RawDataPatterns []string

	Retention time.Duration
	Now       time.Time
}

// Rule is one independent compliance check. Verdicts are order-insensitive;
// only the findings list order follows registration order.
type Rule interface {
	ID() string
	Check(state *AuditState) []Finding
}

// Fixer applies remediation for auto-fixable findings.
type Fixer interface {
	// RemoveRawFile deletes one retained raw-data file.
	RemoveRawFile(path string) error
}

// FixableRule is a Rule that can remediate its own findings.
type FixableRule interface {
	Rule

	// Fix applies remediation and returns one description per change made.
	Fix(state *AuditState, fixer Fixer) ([]string, error)
}

// Auditor runs a fixed rule set against an AuditState.
type Auditor struct {
	rules       []Rule
	minSeverity Severity
}

// NewAuditor creates an Auditor with the default rule set. minSeverity is
// the threshold at or above which a finding fails the audit.
func NewAuditor(minSeverity Severity) *Auditor {
	return &Auditor{
		minSeverity: minSeverity,
		rules: []Rule{
			&rawRetentionRule{},
			&redactionAppliedRule{},
			&outputColocationRule{},
			&ignorePatternRule{},
			&retentionWindowRule{},
		},
	}
}

// MinSeverity returns the configured failure threshold.
func (a *Auditor) MinSeverity() Severity {
	return a.minSeverity
}

// Audit runs every rule and returns the report. The report passes when no
// finding meets or exceeds the configured minimum severity.
func (a *Auditor) Audit(state *AuditState) *Report {
	report := &Report{
		AuditedAt:   state.Now,
		MinSeverity: a.minSeverity,
		Findings:    []Finding{},
		Pass:        true,
	}
	for _, rule := range a.rules {
		for _, f := range rule.Check(state) {
			report.Findings = append(report.Findings, f)
			if f.Severity >= a.minSeverity {
				report.Pass = false
			}
		}
	}
	return report
}

// AuditAndFix audits, then applies remediation for auto-fixable findings.
// Every change is recorded in the report; nothing is fixed silently. The
// returned report reflects the state before fixes ran.
func (a *Auditor) AuditAndFix(state *AuditState, fixer Fixer) (*Report, error) {
	report := a.Audit(state)
	for _, rule := range a.rules {
		fixable, ok := rule.(FixableRule)
		if !ok {
			continue
		}
		fixes, err := fixable.Fix(state, fixer)
		if err != nil {
			return report, fmt.Errorf("fixing %s: %w", rule.ID(), err)
		}
		report.Fixes = append(report.Fixes, fixes...)
	}
	return report, nil
}

// rawRetentionRule flags raw-data files retained past the retention window.
type rawRetentionRule struct{}

func (r *rawRetentionRule) ID() string { return "raw-data-retention" }

func (r *rawRetentionRule) stale(state *AuditState) []RawFileInfo {
	var stale []RawFileInfo
	for _, f := range state.RawFiles {
		if state.Now.Sub(f.ModTime) > state.Retention {
			stale = append(stale, f)
		}
	}
	return stale
}

func (r *rawRetentionRule) Check(state *AuditState) []Finding {
	var findings []Finding
	for _, f := range r.stale(state) {
		findings = append(findings, Finding{
			Rule:     r.ID(),
			Severity: SeverityCritical,
			Message: fmt.Sprintf("raw data file retained past the %s retention window (age %s)",
				state.Retention, state.Now.Sub(f.ModTime).Round(time.Minute)),
			Location:    f.Path,
			AutoFixable: true,
		})
	}
	return findings
}

func (r *rawRetentionRule) Fix(state *AuditState, fixer Fixer) ([]string, error) {
	var fixes []string
	for _, f := range r.stale(state) {
		if err := fixer.RemoveRawFile(f.Path); err != nil {
			return fixes, err
		}
		fixes = append(fixes, "deleted stale raw data file "+f.Path)
	}
	return fixes, nil
}

// redactionAppliedRule flags persisted output that was produced without a
// redaction policy.
type redactionAppliedRule struct{}

func (r *redactionAppliedRule) ID() string { return "redaction-before-output" }

func (r *redactionAppliedRule) Check(state *AuditState) []Finding {
	if len(state.OutputFiles) == 0 || state.RedactionApplied {
		return nil
	}
	return []Finding{{
		Rule:     r.ID(),
		Severity: SeverityHigh,
		Message:  "output was persisted without applying a redaction policy",
		Location: state.OutputFiles[0],
	}}
}

// outputColocationRule flags rendered output committed alongside raw data in
// the same location.
type outputColocationRule struct{}

func (r *outputColocationRule) ID() string { return "output-colocated-with-raw" }

func (r *outputColocationRule) Check(state *AuditState) []Finding {
	rawDirs := make(map[string]bool, len(state.RawFiles))
	for _, f := range state.RawFiles {
		rawDirs[filepath.Dir(f.Path)] = true
	}
	var findings []Finding
	for _, out := range state.OutputFiles {
		if rawDirs[filepath.Dir(out)] {
			findings = append(findings, Finding{
				Rule:     r.ID(),
				Severity: SeverityHigh,
				Message:  "rendered output shares a directory with raw profile data",
				Location: out,
			})
		}
	}
	return findings
}

// ignorePatternRule flags a version-control ignore file that does not
// exclude raw data.
type ignorePatternRule struct{}

func (r *ignorePatternRule) ID() string { return "ignore-file-raw-pattern" }

func (r *ignorePatternRule) Check(state *AuditState) []Finding {
	if len(state.RawDataPatterns) == 0 {
		return nil
	}
	if !state.IgnoreFileExists {
		return []Finding{{
			Rule:     r.ID(),
			Severity: SeverityMedium,
			Message:  "no version-control ignore file protects raw data files",
		}}
	}
	have := make(map[string]bool, len(state.IgnorePatterns))
	for _, p := range state.IgnorePatterns {
		have[p] = true
	}
	var findings []Finding
	for _, want := range state.RawDataPatterns {
		if !have[want] {
			findings = append(findings, Finding{
				Rule:     r.ID(),
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("ignore file is missing the raw data exclusion pattern %q", want),
			})
		}
	}
	return findings
}

// retentionWindowRule flags a retention window configured above the
// recommended maximum.
type retentionWindowRule struct{}

func (r *retentionWindowRule) ID() string { return "retention-window" }

func (r *retentionWindowRule) Check(state *AuditState) []Finding {
	if state.Retention <= RecommendedMaxRetention {
		return nil
	}
	return []Finding{{
		Rule:     r.ID(),
		Severity: SeverityLow,
		Message: fmt.Sprintf("retention window %s exceeds the recommended maximum of %s",
			state.Retention, RecommendedMaxRetention),
	}}
}
