package profgen

import "time"

// Config is the one validated configuration value for a run. It is
// constructed at process start and passed explicitly into each component;
// nothing reads ambient configuration.
type Config struct {
	// ProfileURL is the profile to extract. Empty means the session's own
	// profile.
	ProfileURL string

	// HasCredentials reports whether authentication material was provided.
	// The credentials themselves stay with the session collaborator.
	HasCredentials bool

	OutputDir string
	Format    Format

	Privacy     RedactionLevel
	MinSeverity Severity

	// KeepRawData controls whether the unredacted record is persisted.
	// When false the raw record stays in memory only.
	KeepRawData bool
	Retention   time.Duration

	// Timeout bounds each navigation or extraction step.
	Timeout time.Duration

	// NavPerSecond paces navigation between section pages.
	NavPerSecond float64

	Headless bool
}

// Validate returns an ECONFIG error for the first invalid setting.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return Errorf(ECONFIG, "output directory required")
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := ParseRedactionLevel(string(c.Privacy)); err != nil {
		return err
	}
	if c.MinSeverity < SeverityLow || c.MinSeverity > SeverityCritical {
		return Errorf(ECONFIG, "minimum audit severity out of range")
	}
	if c.Retention < 0 {
		return Errorf(ECONFIG, "retention duration must not be negative")
	}
	if c.Timeout <= 0 {
		return Errorf(ECONFIG, "step timeout must be positive")
	}
	if c.NavPerSecond <= 0 {
		return Errorf(ECONFIG, "navigation rate must be positive")
	}
	return nil
}
