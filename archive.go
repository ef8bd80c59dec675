package uninews

import (
	"context"
	"time"
)

// StoredArticle is an archived scrape result. Archiving happens outside
// the pipeline: batch callers may store successful records, but the
// pipeline itself never persists anything.
type StoredArticle struct {
	ID               string    `json:"id"`
	URL              string    `json:"url"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	FeaturedImageURL string    `json:"featured_image_url"`
	PublicationDate  *string   `json:"publication_date"`
	Author           *string   `json:"author"`
	ContentHash      string    `json:"content_hash"`
	ScrapedAt        time.Time `json:"scraped_at"`
}

// ArchiveService stores scrape results keyed by source URL.
type ArchiveService interface {
	// SaveArticle archives a successful scrape result for the given URL.
	// An existing entry for the same URL is replaced unless its content
	// hash is unchanged, in which case changed is false and the stored
	// entry is returned as-is. Returns EINVALID for failed records.
	SaveArticle(ctx context.Context, url string, article *Article) (stored *StoredArticle, changed bool, err error)

	// FindArticleByURL retrieves the archived entry for a URL.
	// Returns ENOTFOUND if no entry exists.
	FindArticleByURL(ctx context.Context, url string) (*StoredArticle, error)

	// ListArticles returns archived entries, most recently scraped first.
	// A limit of zero means no limit.
	ListArticles(ctx context.Context, limit, offset int) ([]*StoredArticle, error)
}
