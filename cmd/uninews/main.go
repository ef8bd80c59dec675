package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/anthropic"
	"github.com/fwojciec/uninews/gemini"
	"github.com/fwojciec/uninews/gofeed"
	"github.com/fwojciec/uninews/goquery"
	"github.com/fwojciec/uninews/htmltomarkdown"
	unihttp "github.com/fwojciec/uninews/http"
	"github.com/fwojciec/uninews/openai"
	"github.com/fwojciec/uninews/readability"
	"github.com/fwojciec/uninews/scrape"
	unislog "github.com/fwojciec/uninews/slog"
	"github.com/fwojciec/uninews/trafilatura"
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
type Main struct{}

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
		kong.Name("uninews"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'uninews --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed result, not the raw
	// argument list: global flags may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	deps.Logger = newLogger(stderr, cli.Verbose)

	// The scraping commands share a pipeline; wire it from the active
	// command's flags.
	if opts := cli.options(cmd); opts != nil {
		fetcher := unihttp.NewFetcher()
		defer fetcher.Close()

		extractor, err := newExtractor(opts.Extractor)
		if err != nil {
			return err
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:   unislog.NewLoggingFetcher(fetcher, deps.Logger),
			Extractor: extractor,
			Rewriter:  unislog.NewLoggingRewriter(newRewriter(opts), deps.Logger),
		}
	}

	if cmd == "feed" {
		deps.Feeds = unislog.NewLoggingFeedService(gofeed.NewFeedService(), deps.Logger)
	}
	if cmd == "site" {
		sitemaps := unihttp.NewSitemapService(nil, unihttp.WithSitemapLogger(deps.Logger))
		deps.Sitemaps = unislog.NewLoggingSitemapService(sitemaps, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a stderr logger, or one that discards everything
// when verbose mode is off.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, nil))
}

// newExtractor selects the content extraction strategy.
func newExtractor(name string) (uninews.Extractor, error) {
	switch name {
	case "goquery":
		return goquery.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	}
	return nil, fmt.Errorf("unknown extractor %q", name)
}

// newRewriter selects the rewrite strategy. Credentials come from the
// provider's environment variable and are checked at rewrite time, so a
// missing key is reported on the article record rather than up front.
func newRewriter(opts *ScrapeOptions) uninews.Rewriter {
	if opts.Offline {
		return &scrape.OfflineRewriter{Converter: htmltomarkdown.NewConverter()}
	}

	var generator uninews.Generator
	switch opts.Provider {
	case "gemini":
		generator = gemini.NewGenerator(os.Getenv("GEMINI_API_KEY"), opts.Model)
	case "anthropic":
		generator = anthropic.NewGenerator(os.Getenv("ANTHROPIC_API_KEY"), opts.Model)
	default:
		generator = openai.NewGenerator(os.Getenv("OPENAI_API_KEY"), opts.Model)
	}
	return scrape.NewRewriter(generator)
}
