package mock

import (
	"context"

	"github.com/aleksw/profgen"
)

var _ profgen.AuditLog = (*AuditLog)(nil)

// AuditLog is a mock implementation of profgen.AuditLog.
type AuditLog struct {
	RecordReportFn  func(ctx context.Context, report *profgen.Report, info profgen.RunInfo) error
	RecentReportsFn func(ctx context.Context, limit int) ([]*profgen.Report, error)
}

func (l *AuditLog) RecordReport(ctx context.Context, report *profgen.Report, info profgen.RunInfo) error {
	return l.RecordReportFn(ctx, report, info)
}

func (l *AuditLog) RecentReports(ctx context.Context, limit int) ([]*profgen.Report, error) {
	return l.RecentReportsFn(ctx, limit)
}
