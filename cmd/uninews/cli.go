package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  *scrape.Scraper
	Feeds    uninews.FeedService
	Sitemaps uninews.SitemapService

	// Archive is pre-wired in tests; commands open the SQLite database
	// named by --archive when nil.
	Archive uninews.ArchiveService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline operations to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a single article URL"`
	Feed   FeedCmd   `cmd:"" help:"Scrape every article linked from an RSS or Atom feed"`
	Site   SiteCmd   `cmd:"" help:"Scrape every page listed in a sitemap"`
	List   ListCmd   `cmd:"" help:"List archived articles"`
}

// ScrapeOptions are the flags shared by all scraping commands.
type ScrapeOptions struct {
	Language  string `short:"l" help:"Output language for the rewritten article (default english)"`
	JSON      bool   `short:"j" help:"Print article records as JSON"`
	Provider  string `default:"openai" enum:"openai,gemini,anthropic" help:"Model provider for the rewrite stage"`
	Model     string `help:"Model name (provider default when empty)"`
	Extractor string `default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extraction strategy"`
	Offline   bool   `help:"Convert to Markdown locally instead of calling a model"`
	Out       string `help:"Directory to write article Markdown files to"`
	Archive   string `help:"SQLite database path to archive results in"`
}

// BatchOptions are the flags shared by the feed and site commands.
type BatchOptions struct {
	Concurrency int     `short:"c" default:"4" help:"Concurrent scrape limit"`
	Limit       int     `help:"Maximum number of articles to scrape (0 = all)"`
	RPS         float64 `default:"1" help:"Requests per second per domain"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Article URL"`
	ScrapeOptions
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL string `arg:"" help:"Feed URL"`
	ScrapeOptions
	BatchOptions
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL string `arg:"" help:"Sitemap URL"`
	ScrapeOptions
	BatchOptions
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Archive string `arg:"" help:"SQLite database path"`
	JSON    bool   `short:"j" help:"Print entries as JSON"`
	Limit   int    `help:"Maximum number of entries (0 = all)"`
	Offset  int    `help:"Number of entries to skip"`
}

// options returns the scrape options of the active command, if any.
func (c *CLI) options(cmd string) *ScrapeOptions {
	switch cmd {
	case "scrape":
		return &c.Scrape.ScrapeOptions
	case "feed":
		return &c.Feed.ScrapeOptions
	case "site":
		return &c.Site.ScrapeOptions
	}
	return nil
}
