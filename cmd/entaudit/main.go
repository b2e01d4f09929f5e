package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/audit"
	"github.com/fwojciec/entaudit/cache"
	entauditcsv "github.com/fwojciec/entaudit/csv"
	"github.com/fwojciec/entaudit/gemini"
	"github.com/fwojciec/entaudit/goquery"
	enthttp "github.com/fwojciec/entaudit/http"
	"github.com/fwojciec/entaudit/readability"
	"github.com/fwojciec/entaudit/rod"
	entslog "github.com/fwojciec/entaudit/slog"
	"github.com/fwojciec/entaudit/sqlite"
	"github.com/fwojciec/entaudit/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BatchService  entaudit.BatchService
	RecordService entaudit.RecordService
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
	// Local .env files carry API keys during development.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("entaudit"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'entaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ENTAUDIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BatchService = sqlite.NewBatchService(m.DB)
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Batches = m.BatchService
	deps.Records = m.RecordService
	deps.Writer = entauditcsv.NewWriter()

	if cmd == "run" {
		logger := stdslog.New(stdslog.DiscardHandler)
		if cli.Run.Verbose {
			logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
		}

		runner, cleanup, err := buildRunner(ctx, &cli.Run, stderr, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		deps.Runner = runner
		deps.Model = cli.Run.Model
	}

	return kongCtx.Run(deps)
}

// buildRunner wires the audit pipeline from the run command's flags.
// The returned cleanup closes the fetcher.
func buildRunner(ctx context.Context, cmd *RunCmd, stderr io.Writer, logger *stdslog.Logger) (*audit.Runner, func(), error) {
	var fetcher entaudit.Fetcher
	if cmd.Browser {
		browserFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --no-browser for plain HTTP fetching")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = browserFetcher
	} else {
		fetcher = enthttp.NewFetcher()
	}
	fetcher = entslog.NewLoggingFetcher(cache.NewFetcher(fetcher), logger)
	cleanup := func() { _ = fetcher.Close() }

	var texts entaudit.TextExtractor
	switch cmd.Extractor {
	case "article":
		texts = trafilatura.NewExtractor()
	case "reader":
		texts = readability.NewExtractor()
	default:
		texts = goquery.NewTextExtractor()
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		cleanup()
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		cleanup()
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// Prefer the Natural Language API for entity extraction when a key
	// is available; fall back to Gemini otherwise.
	var entities entaudit.EntityExtractor
	if nlKey := os.Getenv("NL_API_KEY"); nlKey != "" {
		entities = enthttp.NewEntityExtractor(nlKey)
	} else {
		entities = gemini.NewEntityExtractor(client, cmd.Model)
	}

	runner := &audit.Runner{
		Fetcher:     fetcher,
		Texts:       texts,
		Entities:    entslog.NewLoggingExtractor(entities, logger),
		Auditor:     entslog.NewLoggingAuditor(gemini.NewAuditor(client, cmd.Model), logger),
		RateLimiter: audit.NewDomainLimiter(1.0),
		Concurrency: cmd.Concurrency,
		RetryDelays: audit.DefaultRetryDelays(),
	}

	return runner, cleanup, nil
}

func defaultDBPath() string {
	if path := os.Getenv("ENTAUDIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "entaudit.db"
	}
	dir := filepath.Join(home, ".entaudit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "entaudit.db")
}
