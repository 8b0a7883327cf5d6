package main

import (
	"fmt"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/fs"
)

// auditParams carry everything the shared audit step needs, whether it runs
// at the end of generate or standalone.
type auditParams struct {
	outputDir   string
	minSeverity profgen.Severity
	retention   time.Duration
	fix         bool

	record           *profgen.ProfileRecord
	redactionApplied bool
	redactionLevel   profgen.RedactionLevel
	profileURL       string
	format           profgen.Format
}

// Run executes the audit command standalone against an output directory.
func (c *AuditCmd) Run(deps *Dependencies) error {
	minSeverity, err := profgen.ParseSeverity(c.MinSeverity)
	if err != nil {
		return err
	}
	retention, err := time.ParseDuration(c.Retention)
	if err != nil {
		return profgen.Errorf(profgen.ECONFIG, "invalid retention duration %q", c.Retention)
	}

	return runAudit(deps, auditParams{
		outputDir:   c.OutputDir,
		minSeverity: minSeverity,
		retention:   retention,
		fix:         c.Fix,
		// Documents written by this tool always pass through a redaction
		// policy, so a standalone audit does not re-flag them.
		redactionApplied: true,
	})
}

// runAudit collects filesystem state, runs the rule set, records the report
// in the audit trail, and prints it. A failing report returns ECOMPLIANCE.
func runAudit(deps *Dependencies, p auditParams) error {
	collector := &fs.StateCollector{
		OutputDir: p.outputDir,
		Retention: p.retention,
	}
	state, err := collector.Collect()
	if err != nil {
		return err
	}
	state.Record = p.record
	state.RedactionApplied = p.redactionApplied
	state.RedactionLevel = p.redactionLevel

	auditor := profgen.NewAuditor(p.minSeverity)
	var report *profgen.Report
	if p.fix {
		cleaner := &fs.Cleaner{Root: p.outputDir, Logger: deps.Logger}
		report, err = auditor.AuditAndFix(state, cleaner)
		if err != nil {
			return err
		}
	} else {
		report = auditor.Audit(state)
	}

	info := profgen.RunInfo{
		ProfileURL:     p.profileURL,
		Format:         p.format,
		RedactionLevel: p.redactionLevel,
	}
	if p.record != nil {
		if hash, err := fs.RecordHash(p.record); err == nil {
			info.RecordHash = hash
		}
	}
	if err := deps.AuditLog.RecordReport(deps.Ctx, report, info); err != nil {
		return err
	}

	printReport(deps, report)
	if !report.Pass {
		return profgen.Errorf(profgen.ECOMPLIANCE,
			"audit failed with findings at or above %s severity", report.MinSeverity)
	}
	return nil
}

func printReport(deps *Dependencies, report *profgen.Report) {
	if len(report.Findings) == 0 {
		fmt.Fprintln(deps.Stdout, "Audit passed: no findings")
	} else {
		for _, f := range report.Findings {
			fmt.Fprintf(deps.Stdout, "[%s] %s: %s", f.Severity, f.Rule, f.Message)
			if f.Location != "" {
				fmt.Fprintf(deps.Stdout, " (%s)", f.Location)
			}
			fmt.Fprintln(deps.Stdout)
		}
	}
	for _, fix := range report.Fixes {
		fmt.Fprintf(deps.Stdout, "fixed: %s\n", fix)
	}
}
