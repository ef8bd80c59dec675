package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/beevik/etree"
	"github.com/fwojciec/uninews"
)

// Ensure SitemapService implements uninews.SitemapService.
var _ uninews.SitemapService = (*SitemapService)(nil)

// SitemapService discovers article URLs from XML sitemaps, including the
// news sitemaps most publishers expose. Sitemap indexes are resolved one
// level deep; nested indexes below that are ignored.
type SitemapService struct {
	client *http.Client
	logger *slog.Logger
}

// SitemapOption configures a SitemapService.
type SitemapOption func(*SitemapService)

// WithSitemapLogger sets the logger used to report child sitemaps that
// were skipped during index resolution.
func WithSitemapLogger(logger *slog.Logger) SitemapOption {
	return func(s *SitemapService) {
		s.logger = logger
	}
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client, opts ...SitemapOption) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	s := &SitemapService{
		client: client,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs fetches the sitemap at sitemapURL and returns the page
// URLs it lists, in document order.
func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, uninews.Errorf(uninews.EINVALID, "failed to parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, uninews.Errorf(uninews.EINVALID, "sitemap %s has no root element", sitemapURL)
	}

	switch root.Tag {
	case "urlset":
		return pageURLs(root), nil
	case "sitemapindex":
		// Resolve each child sitemap. A child that fails to fetch or
		// parse is logged and skipped; discovery only fails when no
		// child resolved at all.
		var urls []string
		var failed int
		children := pageURLs(root)
		for _, child := range children {
			childURLs, err := s.DiscoverURLs(ctx, child)
			if err != nil {
				failed++
				s.logger.Warn("skipping child sitemap",
					"url", child,
					"err", err,
				)
				continue
			}
			urls = append(urls, childURLs...)
		}
		if failed > 0 && failed == len(children) {
			return nil, uninews.Errorf(uninews.EUNAVAILABLE, "failed to resolve any of the %d child sitemaps in %s", failed, sitemapURL)
		}
		return urls, nil
	default:
		return nil, uninews.Errorf(uninews.EINVALID, "sitemap %s has unexpected root element <%s>", sitemapURL, root.Tag)
	}
}

// pageURLs collects the <loc> text of each <url> or <sitemap> child.
func pageURLs(root *etree.Element) []string {
	var urls []string
	for _, entry := range root.ChildElements() {
		if entry.Tag != "url" && entry.Tag != "sitemap" {
			continue
		}
		if loc := entry.SelectElement("loc"); loc != nil {
			if text := loc.Text(); text != "" {
				urls = append(urls, text)
			}
		}
	}
	return urls
}

func (s *SitemapService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, uninews.Errorf(uninews.EUNAVAILABLE, "failed to fetch sitemap: %s", causeChain(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, uninews.Errorf(uninews.EUNAVAILABLE, "failed to fetch sitemap: HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
