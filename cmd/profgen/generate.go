package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/assemble"
	"github.com/aleksw/profgen/bloom"
	"github.com/aleksw/profgen/fs"
	"github.com/aleksw/profgen/render"
)

// Run executes the generate command: assemble, optionally persist raw,
// redact, render, write, audit.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg, formats, err := c.config()
	if err != nil {
		return err
	}

	assembler := &assemble.Assembler{
		Session:    deps.Session,
		Extractor:  deps.Extractor,
		Normalizer: deps.Normalizer,
		Classifier: deps.Classifier,
		Limiter:    assemble.NewNavLimiter(cfg.NavPerSecond),
		Timeout:    cfg.Timeout,
		Logger:     deps.Logger,
	}

	rec, statuses, err := assembler.Assemble(deps.Ctx, cfg.ProfileURL)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Fprintf(deps.Stdout, "  %-16s %s", s.Section, s.State)
		if s.Entries > 0 {
			fmt.Fprintf(deps.Stdout, " (%d entries)", s.Entries)
		}
		fmt.Fprintln(deps.Stdout)
	}

	store := fs.NewRawStore(cfg.OutputDir)
	if cfg.KeepRawData {
		if err := store.Save(deps.Ctx, rec); err != nil {
			return err
		}
		// Nothing is committed until the redacted output is safely written.
		defer store.Abort()
	}

	redactor := profgen.NewRedactor(profgen.PolicyFor(cfg.Privacy),
		bloom.NewKeywordFilter(profgen.DefaultSensitiveKeywords))
	redacted := redactor.Redact(rec)

	if err := writeDocuments(deps, redacted, cfg.OutputDir, rec.Name, formats); err != nil {
		return err
	}

	if cfg.KeepRawData {
		if err := store.Commit(); err != nil {
			return err
		}
		if added, err := fs.EnsureIgnoreFile(cfg.OutputDir); err != nil {
			return err
		} else if len(added) > 0 {
			deps.Logger.Info("updated ignore file", "patterns", added)
		}
	}

	return runAudit(deps, auditParams{
		outputDir:        cfg.OutputDir,
		minSeverity:      cfg.MinSeverity,
		retention:        cfg.Retention,
		record:           rec,
		redactionApplied: true,
		redactionLevel:   cfg.Privacy,
		profileURL:       rec.ProfileURL,
		format:           cfg.Format,
	})
}

// config validates the command flags into a Config plus the parsed format
// list.
func (c *GenerateCmd) config() (*profgen.Config, []profgen.Format, error) {
	formats, err := parseFormats(c.Format)
	if err != nil {
		return nil, nil, err
	}
	privacy, err := profgen.ParseRedactionLevel(c.Privacy)
	if err != nil {
		return nil, nil, err
	}
	minSeverity, err := profgen.ParseSeverity(c.MinSeverity)
	if err != nil {
		return nil, nil, err
	}
	retention, err := time.ParseDuration(c.Retention)
	if err != nil {
		return nil, nil, profgen.Errorf(profgen.ECONFIG, "invalid retention duration %q", c.Retention)
	}
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return nil, nil, profgen.Errorf(profgen.ECONFIG, "invalid timeout %q", c.Timeout)
	}

	cfg := &profgen.Config{
		ProfileURL:     c.URL,
		HasCredentials: true,
		OutputDir:      c.OutputDir,
		Format:         formats[0],
		Privacy:        privacy,
		MinSeverity:    minSeverity,
		KeepRawData:    c.KeepRaw,
		Retention:      retention,
		Timeout:        timeout,
		NavPerSecond:   c.NavRate,
		Headless:       !c.Headful,
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, formats, nil
}

func parseFormats(raw []string) ([]profgen.Format, error) {
	if len(raw) == 0 {
		return nil, profgen.Errorf(profgen.ECONFIG, "at least one output format required")
	}
	formats := make([]profgen.Format, 0, len(raw))
	seen := make(map[profgen.Format]bool)
	for _, s := range raw {
		f, err := profgen.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// writeDocuments renders and writes one document per format. Renders are
// independent, so they run concurrently.
func writeDocuments(deps *Dependencies, rec *profgen.ProfileRecord, dir, name string, formats []profgen.Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "create output directory: %v", err)
	}

	g, _ := errgroup.WithContext(deps.Ctx)
	for _, format := range formats {
		g.Go(func() error {
			renderer, err := render.For(format)
			if err != nil {
				return err
			}
			out, err := renderer.Render(rec)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, outputFileName(name, format))
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return profgen.Errorf(profgen.EINTERNAL, "write %s: %v", path, err)
			}
			deps.Logger.Info("wrote document", "path", path, "bytes", len(out))
			return nil
		})
	}
	return g.Wait()
}

func outputFileName(name string, format profgen.Format) string {
	slug := "resume"
	if name != "" {
		slug = slugify(name) + "_resume"
	}
	return slug + format.Ext()
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if len(out) > 0 && out[len(out)-1] != '_' {
				out = append(out, '_')
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '_' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "resume"
	}
	return string(out)
}
