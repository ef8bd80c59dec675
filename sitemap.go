package uninews

import "context"

// SitemapService discovers article URLs from a site's XML sitemap.
type SitemapService interface {
	// DiscoverURLs fetches the sitemap at sitemapURL and returns the page
	// URLs it lists. Sitemap indexes are resolved one level deep.
	DiscoverURLs(ctx context.Context, sitemapURL string) ([]string, error)
}
