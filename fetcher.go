package uninews

import "context"

// Fetcher retrieves the raw HTML body of a URL.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// No retries are attempted. Failures are reported as application
	// errors whose messages carry the full underlying cause chain.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
