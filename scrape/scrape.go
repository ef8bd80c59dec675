// Package scrape orchestrates the article scraping pipeline: fetch,
// locate and clean content, extract metadata, rewrite as Markdown. Every
// stage is terminal on failure and every invocation produces an Article,
// never a panic or a bare error, so batch callers can continue past
// individual failures without guard code.
package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/uninews"
)

// NoContentMessage is the fixed error recorded when the extractor finds
// no meaningful content. Metadata and rewrite are skipped in that case:
// a contentless record is not worth rewriting.
const NoContentMessage = "could not extract meaningful content from the page"

// Scraper runs the pipeline. All three collaborators are required.
type Scraper struct {
	Fetcher   uninews.Fetcher
	Extractor uninews.Extractor
	Rewriter  uninews.Rewriter
}

// Scrape fetches the URL and returns the article rewritten as Markdown
// in the requested language (blank selects the default). The returned
// record carries an error message instead of failing:
//
//   - fetch or body-read failure: all fields cleared, Err describes the
//     transport failure with its cause chain
//   - no meaningful content: all fields cleared, Err is NoContentMessage
//   - rewrite failure: scraped title, image, date and author are kept
//     for diagnostics, Content still holds the pre-rewrite HTML, and Err
//     marks the record failed
//
// Stages run strictly in sequence; nothing is retried.
func (s *Scraper) Scrape(ctx context.Context, url, language string) *uninews.Article {
	body, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return uninews.Fail(uninews.ErrorMessage(err))
	}

	result, err := s.Extractor.Extract(body)
	if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
		return uninews.Fail(NoContentMessage)
	}

	article := &uninews.Article{
		Title:            result.Title,
		Content:          result.ContentHTML,
		FeaturedImageURL: result.FeaturedImageURL,
		PublicationDate:  result.PublicationDate,
		Author:           result.Author,
	}

	rewritten, err := s.Rewriter.Rewrite(ctx, article, language)
	if err != nil {
		article.Err = uninews.ErrorMessage(err)
		return article
	}

	return rewritten
}
