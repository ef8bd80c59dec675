package uninews

import "context"

// DomainLimiter provides per-domain rate limiting for batch scraping.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
