// Package gofeed implements uninews.FeedService using the gofeed
// parser, which handles RSS, Atom and JSON Feed transparently.
package gofeed

import (
	"context"

	"github.com/fwojciec/uninews"
	"github.com/mmcdole/gofeed"
)

// Ensure FeedService implements uninews.FeedService at compile time.
var _ uninews.FeedService = (*FeedService)(nil)

// FeedService discovers article URLs from syndication feeds.
type FeedService struct {
	parser *gofeed.Parser
}

// NewFeedService creates a new FeedService.
func NewFeedService() *FeedService {
	return &FeedService{parser: gofeed.NewParser()}
}

// ArticleURLs fetches and parses the feed and returns the link of every
// item, in feed order. Items without a link are skipped.
func (s *FeedService) ArticleURLs(ctx context.Context, feedURL string) ([]string, error) {
	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, uninews.Errorf(uninews.EUNAVAILABLE, "failed to parse feed %s: %v", feedURL, err)
	}

	urls := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		urls = append(urls, item.Link)
	}
	return urls, nil
}
