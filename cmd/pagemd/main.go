package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/fetch"
	pagemdgoquery "github.com/fwojciec/pagemd/goquery"
	pagemdhttp "github.com/fwojciec/pagemd/http"
	"github.com/fwojciec/pagemd/htmltomarkdown"
	"github.com/fwojciec/pagemd/readability"
	pagemdslog "github.com/fwojciec/pagemd/slog"
	"github.com/fwojciec/pagemd/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// transportCeiling bounds the HTTP client itself. Per-request deadlines are
// enforced through the request context, so this only guards against requests
// that were issued without one.
const transportCeiling = 5 * time.Minute

// Main represents the program.
type Main struct {
	// Service used by commands. Left nil outside of tests; Run wires the
	// real pipeline when unset.
	Service pagemd.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Fetch web pages and convert them to markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemd --help' to see available commands")
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

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply(cli)

	deps.Logger = newLogger(stderr, cli.LogLevel)

	if m.Service == nil {
		fetcherOpts := []pagemdhttp.Option{pagemdhttp.WithTimeout(transportCeiling)}
		if cli.UserAgent != "" {
			fetcherOpts = append(fetcherOpts, pagemdhttp.WithUserAgent(cli.UserAgent))
		}
		if cfg.AcceptLanguage != "" {
			fetcherOpts = append(fetcherOpts, pagemdhttp.WithAcceptLanguage(cfg.AcceptLanguage))
		}

		fetcher := pagemdslog.NewLoggingFetcher(pagemdhttp.NewFetcher(fetcherOpts...), deps.Logger)
		defer fetcher.Close()

		var extractor pagemd.Extractor
		switch cli.Extractor {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = readability.NewExtractor()
		}
		extractor = pagemdslog.NewLoggingExtractor(extractor, deps.Logger)

		m.Service = fetch.NewService(
			fetcher,
			extractor,
			htmltomarkdown.NewConverter(),
			pagemdgoquery.NewHarvester(),
		)
	}
	deps.Service = m.Service

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
