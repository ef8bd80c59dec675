package scrape

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/bloom"
	"golang.org/x/sync/errgroup"
)

// dedupFalsePositiveRate is the acceptable false positive rate when
// deduplicating the URL list. A false positive silently drops a URL, so
// the rate is kept low.
const dedupFalsePositiveRate = 0.001

// Batch scrapes many URLs concurrently through a single Scraper.
type Batch struct {
	Scraper     *Scraper
	Limiter     uninews.DomainLimiter
	Concurrency int
}

// Result pairs a scraped article with the URL it came from. Batch
// output preserves input order, so callers can correlate by position
// as well.
type Result struct {
	URL     string
	Article *uninews.Article
}

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeAll scrapes the given URLs and returns one Result per unique
// URL, in input order. Duplicate URLs are dropped before any network
// traffic happens. A per-URL failure is recorded on its Article and
// never stops the batch; only context cancellation ends the run early,
// in which case the remaining slots hold failed records.
func (b *Batch) ScrapeAll(ctx context.Context, urls []string, language string, progress ProgressFunc) []Result {
	seen := bloom.NewFilter(uint(len(urls))+1, dedupFalsePositiveRate)
	deduped := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Test(u) {
			continue
		}
		seen.Add(u)
		deduped = append(deduped, u)
	}

	total := len(deduped)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]Result, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range deduped {
		g.Go(func() error {
			article := b.scrapeOne(gctx, u, language)
			results[i] = Result{URL: u, Article: article}

			if progress != nil {
				eventType := ProgressCompleted
				if article.Failed() {
					eventType = ProgressFailed
				}
				progress(ProgressEvent{
					Type:      eventType,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       u,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

func (b *Batch) scrapeOne(ctx context.Context, rawURL, language string) *uninews.Article {
	if b.Limiter != nil {
		if domain := domainOf(rawURL); domain != "" {
			if err := b.Limiter.Wait(ctx, domain); err != nil {
				return uninews.Fail(uninews.ErrorMessage(err))
			}
		}
	}
	return b.Scraper.Scrape(ctx, rawURL, language)
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
