// Package readability provides an alternative uninews.Extractor backed
// by go-readability, a port of Mozilla's Readability.
package readability

import (
	"strings"
	"time"

	"github.com/fwojciec/uninews"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content and metadata.
func (e *Extractor) Extract(rawHTML string) (*uninews.ExtractResult, error) {
	if rawHTML == "" {
		return nil, uninews.Errorf(uninews.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	result := &uninews.ExtractResult{
		Title:            article.Title,
		ContentHTML:      article.Content,
		FeaturedImageURL: article.Image,
	}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		result.Author = &byline
	}
	if article.PublishedTime != nil {
		date := article.PublishedTime.Format(time.RFC3339)
		result.PublicationDate = &date
	}

	return result, nil
}
