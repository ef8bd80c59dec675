package uninews

import "context"

// FeedService lists article URLs from a syndication feed.
type FeedService interface {
	// ArticleURLs parses the RSS/Atom feed at feedURL and returns the
	// linked article URLs in feed order. Items without a link are skipped.
	ArticleURLs(ctx context.Context, feedURL string) ([]string, error)
}
