package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookmeta"
	"github.com/fwojciec/bookmeta/aladin"
	"github.com/fwojciec/bookmeta/goquery"
	"github.com/fwojciec/bookmeta/htmltomarkdown"
	bookhttp "github.com/fwojciec/bookmeta/http"
	bookslog "github.com/fwojciec/bookmeta/slog"
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
	// Provider replaces the Aladin provider built from flags.
	// Set before calling Run().
	Provider bookmeta.Provider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookmeta"),
		kong.Description("Look up book metadata on aladin.co.kr"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no query provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Provider: m.Provider,
	}

	if deps.Provider == nil {
		var fetcher bookmeta.Fetcher = bookhttp.NewFetcher(
			bookhttp.WithTimeout(cli.Timeout),
			bookhttp.WithUserAgent(cli.UserAgent),
		)
		defer fetcher.Close()
		if cli.Verbose {
			fetcher = bookslog.NewLoggingFetcher(fetcher, logger)
		}

		provider := aladin.NewProvider(fetcher, goquery.NewAladinParser())
		if cli.Markdown {
			provider.Converter = htmltomarkdown.NewConverter()
		}
		provider.Logger = logger
		provider.Concurrency = cli.Concurrency
		deps.Provider = provider
	}

	if cli.Verbose {
		deps.Provider = bookslog.NewLoggingProvider(deps.Provider, logger)
	}

	cmd := &SearchCmd{
		Query:        cli.Query,
		GenericCover: cli.GenericCover,
		Locale:       cli.Locale,
		JSON:         cli.JSON,
	}

	return cmd.Run(deps)
}

// newLogger logs warnings to w, or everything down to debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
