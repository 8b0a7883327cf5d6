package sqlite

import (
	"context"
	"time"

	"github.com/aleksw/profgen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ profgen.AuditLog = (*AuditService)(nil)

// AuditService implements profgen.AuditLog using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// RecordReport stores a report with its findings and fixes. The report's ID
// is assigned here.
func (s *AuditService) RecordReport(ctx context.Context, report *profgen.Report, info profgen.RunInfo) error {
	report.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_runs (id, audited_at, min_severity, pass, profile_url, record_hash, format, redaction_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.AuditedAt.UTC().Format(time.RFC3339), report.MinSeverity.String(), boolInt(report.Pass),
		info.ProfileURL, info.RecordHash, string(info.Format), string(info.RedactionLevel))
	if err != nil {
		return err
	}

	for i, f := range report.Findings {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO audit_findings (id, run_id, rule, severity, message, location, auto_fixable, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), report.ID, f.Rule, f.Severity.String(), f.Message, f.Location, boolInt(f.AutoFixable), i)
		if err != nil {
			return err
		}
	}

	for i, fix := range report.Fixes {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO audit_fixes (id, run_id, description, position)
			VALUES (?, ?, ?, ?)
		`, uuid.New().String(), report.ID, fix, i)
		if err != nil {
			return err
		}
	}

	return nil
}

// RecentReports returns up to limit reports, newest first.
func (s *AuditService) RecentReports(ctx context.Context, limit int) ([]*profgen.Report, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, audited_at, min_severity, pass
		FROM audit_runs
		ORDER BY audited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*profgen.Report
	for rows.Next() {
		var report profgen.Report
		var auditedAt, minSeverity string
		var pass int
		if err := rows.Scan(&report.ID, &auditedAt, &minSeverity, &pass); err != nil {
			return nil, err
		}
		report.AuditedAt, err = time.Parse(time.RFC3339, auditedAt)
		if err != nil {
			return nil, profgen.Errorf(profgen.EINTERNAL, "parse audited_at: %v", err)
		}
		report.MinSeverity, err = profgen.ParseSeverity(minSeverity)
		if err != nil {
			return nil, err
		}
		report.Pass = pass != 0
		report.Findings = []profgen.Finding{}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, report := range reports {
		if err := s.attachFindings(ctx, report); err != nil {
			return nil, err
		}
		if err := s.attachFixes(ctx, report); err != nil {
			return nil, err
		}
	}

	return reports, nil
}

func (s *AuditService) attachFindings(ctx context.Context, report *profgen.Report) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule, severity, message, location, auto_fixable
		FROM audit_findings
		WHERE run_id = ?
		ORDER BY position
	`, report.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var f profgen.Finding
		var severity string
		var fixable int
		if err := rows.Scan(&f.Rule, &severity, &f.Message, &f.Location, &fixable); err != nil {
			return err
		}
		f.Severity, err = profgen.ParseSeverity(severity)
		if err != nil {
			return err
		}
		f.AutoFixable = fixable != 0
		report.Findings = append(report.Findings, f)
	}
	return rows.Err()
}

func (s *AuditService) attachFixes(ctx context.Context, report *profgen.Report) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT description
		FROM audit_fixes
		WHERE run_id = ?
		ORDER BY position
	`, report.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var fix string
		if err := rows.Scan(&fix); err != nil {
			return err
		}
		report.Fixes = append(report.Fixes, fix)
	}
	return rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
