package main

import (
	"fmt"
	"time"
)

// Run executes the history command: list recent audit reports from the
// trail database.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	reports, err := deps.AuditLog.RecentReports(deps.Ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No audit reports recorded")
		return nil
	}

	for _, report := range reports {
		verdict := "FAIL"
		if report.Pass {
			verdict = "PASS"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d finding(s)\n",
			report.AuditedAt.Local().Format(time.RFC3339), verdict, report.ID, len(report.Findings))
		if c.Full {
			for _, f := range report.Findings {
				fmt.Fprintf(deps.Stdout, "    [%s] %s: %s\n", f.Severity, f.Rule, f.Message)
			}
			for _, fix := range report.Fixes {
				fmt.Fprintf(deps.Stdout, "    fixed: %s\n", fix)
			}
		}
	}
	return nil
}
