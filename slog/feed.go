package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uninews"
)

// Ensure LoggingFeedService implements uninews.FeedService.
var _ uninews.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with discovery logging.
type LoggingFeedService struct {
	next   uninews.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next uninews.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// ArticleURLs delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) ArticleURLs(ctx context.Context, feedURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed discovery",
			"url", feedURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ArticleURLs(ctx, feedURL)
}
