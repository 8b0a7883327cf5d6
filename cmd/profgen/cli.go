package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/normalize"
	"github.com/aleksw/profgen/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB       *sqlite.DB
	AuditLog profgen.AuditLog

	// Session and its collaborators are wired for the generate command only.
	Session    profgen.Session
	Extractor  profgen.Extractor
	Normalizer *normalize.Normalizer
	Classifier profgen.SkillClassifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Extract a profile and render resume documents"`
	Render   RenderCmd   `cmd:"" help:"Render documents from previously saved raw data"`
	Audit    AuditCmd    `cmd:"" help:"Run the compliance audit against an output directory"`
	Cleanup  CleanupCmd  `cmd:"" help:"Delete retained raw data files"`
	History  HistoryCmd  `cmd:"" help:"List recent audit reports"`
}

// outputFlags are shared by the commands that produce documents.
type outputFlags struct {
	OutputDir string   `short:"o" default:"output" help:"Directory for rendered documents"`
	Format    []string `short:"f" default:"markdown" help:"Output formats (markdown, html, json; repeatable)"`
	Privacy   string   `short:"p" default:"normal" help:"Redaction level (strict, normal, minimal)"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	outputFlags

	URL         string  `arg:"" optional:"" help:"Profile URL (defaults to the logged-in profile)"`
	MinSeverity string  `default:"medium" help:"Audit severity that fails the run"`
	KeepRaw     bool    `help:"Persist the unredacted record next to the output"`
	Retention   string  `default:"24h" help:"Raw data retention window"`
	Timeout     string  `default:"30s" help:"Per-navigation timeout"`
	NavRate     float64 `default:"0.5" help:"Navigations per second"`
	Headful     bool    `help:"Run the browser with a visible window"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	outputFlags
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	OutputDir   string `short:"o" default:"output" help:"Directory to audit"`
	MinSeverity string `default:"medium" help:"Audit severity that fails the audit"`
	Retention   string `default:"24h" help:"Raw data retention window"`
	Fix         bool   `help:"Apply remediation for auto-fixable findings"`
}

// CleanupCmd is the "cleanup" subcommand.
type CleanupCmd struct {
	OutputDir string `short:"o" default:"output" help:"Directory to clean"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int  `short:"n" default:"10" help:"Number of reports to list"`
	Full  bool `help:"Show findings for each report"`
}
