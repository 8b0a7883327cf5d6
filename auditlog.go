package profgen

import "context"

// RunInfo is the context stored alongside an audit report: which profile
// was processed and how.
type RunInfo struct {
	ProfileURL     string         `json:"profileUrl,omitempty"`
	RecordHash     string         `json:"recordHash,omitempty"`
	Format         Format         `json:"format,omitempty"`
	RedactionLevel RedactionLevel `json:"redactionLevel,omitempty"`
}

// AuditLog persists audit reports so compliance history survives across
// runs.
type AuditLog interface {
	// RecordReport stores a report and assigns its ID.
	RecordReport(ctx context.Context, report *Report, info RunInfo) error

	// RecentReports returns up to limit reports, newest first, with their
	// findings attached.
	RecentReports(ctx context.Context, limit int) ([]*Report, error)
}
