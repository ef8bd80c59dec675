package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/fs"
	"github.com/fwojciec/uninews/scrape"
	"github.com/fwojciec/uninews/sqlite"
)

// printArticle prints a scraped record to the output writer.
func printArticle(w io.Writer, article *uninews.Article, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}
	fmt.Fprintln(w, uninews.FormatArticle(article))
	return nil
}

// persister routes successful records to the optional output directory
// and archive database. Failed records are never persisted.
type persister struct {
	writer  *fs.Writer
	archive uninews.ArchiveService
	closeFn func() error
}

func newPersister(deps *Dependencies, opts *ScrapeOptions) (*persister, error) {
	p := &persister{archive: deps.Archive}
	if opts.Out != "" {
		p.writer = fs.NewWriter(opts.Out)
	}
	if p.archive == nil && opts.Archive != "" {
		db := sqlite.NewDB(opts.Archive)
		if err := db.Open(); err != nil {
			return nil, fmt.Errorf("failed to open archive at %q: %w", opts.Archive, err)
		}
		p.archive = sqlite.NewArchiveService(db)
		p.closeFn = db.Close
	}
	return p, nil
}

func (p *persister) persist(deps *Dependencies, url string, article *uninews.Article) error {
	if article.Failed() {
		return nil
	}
	if p.writer != nil {
		if _, err := p.writer.WriteArticle(deps.Ctx, url, article); err != nil {
			return err
		}
	}
	if p.archive != nil {
		if _, _, err := p.archive.SaveArticle(deps.Ctx, url, article); err != nil {
			return err
		}
	}
	return nil
}

func (p *persister) Close() error {
	if p.closeFn != nil {
		return p.closeFn()
	}
	return nil
}

// batchRecord is the JSON shape of one batch result.
type batchRecord struct {
	URL     string           `json:"url"`
	Article *uninews.Article `json:"article"`
}

// runBatch scrapes the URLs and prints every record. Persistence and
// per-record failures are reported but never abort the run.
func runBatch(deps *Dependencies, opts *ScrapeOptions, batchOpts *BatchOptions, urls []string) error {
	p, err := newPersister(deps, opts)
	if err != nil {
		return err
	}
	defer p.Close()

	batch := &scrape.Batch{
		Scraper:     deps.Scraper,
		Limiter:     scrape.NewDomainLimiter(batchOpts.RPS),
		Concurrency: batchOpts.Concurrency,
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "scraping %d articles\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s\n", event.Completed, event.Total, event.URL)
		}
	}

	results := batch.ScrapeAll(deps.Ctx, urls, opts.Language, progress)

	var failed int
	for _, r := range results {
		if r.Article.Failed() {
			failed++
		} else if err := p.persist(deps, r.URL, r.Article); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", uninews.ErrorMessage(err))
		}
	}

	if opts.JSON {
		records := make([]batchRecord, len(results))
		for i, r := range results {
			records[i] = batchRecord{URL: r.URL, Article: r.Article}
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Article.Failed() {
				fmt.Fprintf(deps.Stderr, "error: %s (%s)\n", r.Article.Err, r.URL)
				continue
			}
			fmt.Fprintf(deps.Stdout, "== %s ==\n", r.URL)
			fmt.Fprintln(deps.Stdout, uninews.FormatArticle(r.Article))
			fmt.Fprintln(deps.Stdout)
		}
	}

	fmt.Fprintf(deps.Stderr, "done: %d ok, %d failed\n", len(results)-failed, failed)
	return nil
}
