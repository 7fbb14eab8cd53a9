package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shopsight"
	"github.com/fwojciec/shopsight/extract"
	"github.com/fwojciec/shopsight/gemini"
	"github.com/fwojciec/shopsight/goquery"
	"github.com/fwojciec/shopsight/htmltomarkdown"
	shophttp "github.com/fwojciec/shopsight/http"
	shopslog "github.com/fwojciec/shopsight/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

// Default outbound pacing per storefront host: requests per second and the
// burst matching one extraction's parallel stage fetches.
const (
	defaultRPS   = 2.0
	defaultBurst = 3
)

const version = "1.0.0"

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
	// Fetcher holds the shared connection pool; closed by Close.
	Fetcher *shophttp.Fetcher

	// ProfileService for end-to-end testing.
	ProfileService shopsight.ProfileService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env before flag parsing so env-tagged flags see its values.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopsight"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shopsight --help' to see available commands")
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

	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	m.Fetcher = shophttp.NewFetcher()
	defer m.Close()

	var enricher shopsight.Enricher
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		enricher = gemini.NewEnricher(client)
		deps.LLMConfigured = true
	}

	pages := goquery.NewParser()
	extractor := &extract.Extractor{
		Detector: shopslog.NewLoggingDetector(shophttp.NewDetector(m.Fetcher.Client()), deps.Logger),
		Fetcher:  m.Fetcher,
		Parser:   pages,
		Catalogs: shophttp.NewCatalogService(m.Fetcher, deps.Logger),
		Policies: shophttp.NewPolicyService(m.Fetcher, htmltomarkdown.NewConverter(), deps.Logger),
		FAQs:     shophttp.NewFAQService(m.Fetcher, pages, deps.Logger),
		Enricher: enricher,
		Limiter:  extract.NewDomainLimiter(defaultRPS, defaultBurst),
		Logger:   deps.Logger,
	}
	m.ProfileService = shopslog.NewLoggingProfileService(extractor, deps.Logger)
	deps.Profiles = m.ProfileService

	return kongCtx.Run(deps)
}
