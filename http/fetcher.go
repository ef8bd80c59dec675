// Package http provides HTTP-based implementations of uninews.Fetcher
// and uninews.SitemapService. Pages are fetched with a single GET
// request; JavaScript-rendered content is out of scope.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/uninews"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// userAgent mirrors a desktop browser; many news sites serve reduced or
// blocked pages to unknown clients.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements uninews.Fetcher at compile time.
var _ uninews.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs over plain HTTP. One GET per Fetch,
// no retries, no caching.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML body from the given URL. Transport failures
// are reported as EUNAVAILABLE with the full cause chain in the message;
// body-read failures after a successful connection as EINTERNAL. The
// two messages are distinguishable by prefix.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", uninews.Errorf(uninews.EINVALID, "failed to fetch URL: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "failed to fetch URL: %s", causeChain(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "failed to fetch URL: HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", uninews.Errorf(uninews.EINTERNAL, "failed to read response body: %v", err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// causeChain renders err followed by every underlying cause, joined with
// " => ", so diagnostics survive the flattening into the article record.
func causeChain(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString(" => ")
		b.WriteString(cause.Error())
	}
	return b.String()
}
