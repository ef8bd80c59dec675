package mock

import (
	"context"

	"github.com/fwojciec/uninews"
)

var _ uninews.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of uninews.FeedService.
type FeedService struct {
	ArticleURLsFn func(ctx context.Context, feedURL string) ([]string, error)
}

func (s *FeedService) ArticleURLs(ctx context.Context, feedURL string) ([]string, error) {
	return s.ArticleURLsFn(ctx, feedURL)
}
