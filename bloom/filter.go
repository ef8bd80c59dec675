// Package bloom provides probabilistic URL deduplication for batch
// scrapes. Feed and sitemap listings routinely repeat article URLs;
// the filter drops repeats in constant memory regardless of list size.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks article URLs that have already been seen.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL may have been seen before. False
// positives are possible at the configured rate; false negatives are
// not, so an unseen URL is never reported as seen by mistake more
// often than the rate allows.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
