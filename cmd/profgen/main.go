package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/gemini"
	"github.com/aleksw/profgen/goquery"
	"github.com/aleksw/profgen/htmltomarkdown"
	"github.com/aleksw/profgen/normalize"
	"github.com/aleksw/profgen/rod"
	prslog "github.com/aleksw/profgen/slog"
	"github.com/aleksw/profgen/sqlite"
	"github.com/aleksw/profgen/trafilatura"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitConfig     = 2
	exitAuth       = 3
	exitExtraction = 4
	exitIO         = 5
	exitCompliance = 6
)

func main() {
	ctx := context.Background()

	// A local .env supplies credentials during development; absence is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, profgen.ErrorMessage(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error's code to the process exit status.
func exitCode(err error) int {
	switch profgen.ErrorCode(err) {
	case profgen.ECONFIG:
		return exitConfig
	case profgen.EUNAUTHORIZED:
		return exitAuth
	case profgen.EUNAVAILABLE, profgen.EINVALID:
		return exitExtraction
	case profgen.EINTERNAL, profgen.ENOTFOUND:
		return exitIO
	case profgen.ECOMPLIANCE:
		return exitCompliance
	default:
		return exitError
	}
}

// Main represents the program.
type Main struct {
	// Database path for the audit trail. Set before calling Run().
	DBPath string

	// SQLite database used by the audit trail.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("profgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'profgen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return profgen.Errorf(profgen.ECONFIG, "%v", err)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PROFGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.AuditLog = sqlite.NewAuditService(m.DB)

	if cmd == "generate" {
		cookie := os.Getenv("LINKEDIN_LI_AT")
		if cookie == "" {
			fmt.Fprintln(stderr, "Hint: Set LINKEDIN_LI_AT to your li_at session cookie (a .env file works too)")
			return profgen.Errorf(profgen.EUNAUTHORIZED, "no session credentials provided")
		}

		session, err := rod.NewSession(
			rod.WithHeadless(!cli.Generate.Headful),
			rod.WithCookie("li_at", cookie, ".linkedin.com"),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Session = rod.NewLoggingSession(session, logger)
		defer deps.Session.Close()

		deps.Extractor = prslog.NewLoggingExtractor(
			goquery.NewExtractor(goquery.WithMainContent(trafilatura.MainContent)), logger)
		deps.Normalizer = normalize.New(htmltomarkdown.NewConverter(), logger)
		deps.Classifier = buildClassifier(ctx, logger)
	}

	if cmd == "render" {
		deps.Normalizer = normalize.New(htmltomarkdown.NewConverter(), logger)
	}

	return kongCtx.Run(deps)
}

// buildClassifier returns the Gemini classifier when an API key is present
// and the keyword classifier otherwise.
func buildClassifier(ctx context.Context, logger *slog.Logger) profgen.SkillClassifier {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return &profgen.KeywordClassifier{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("gemini client unavailable, using keyword classifier", "err", err)
		return &profgen.KeywordClassifier{}
	}
	return gemini.NewClassifier(client)
}

func defaultDBPath() string {
	if path := os.Getenv("PROFGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "profgen.db"
	}
	dir := filepath.Join(home, ".profgen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "profgen.db")
}
