// Package trafilatura provides an alternative uninews.Extractor backed
// by go-trafilatura's statistical content extraction. Useful for pages
// without semantic <article> markup, at the cost of less predictable
// output than the default extractor.
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/fwojciec/uninews"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	extracted := &uninews.ExtractResult{
		Title:            result.Metadata.Title,
		ContentHTML:      contentHTML,
		FeaturedImageURL: result.Metadata.Image,
	}
	if author := strings.TrimSpace(result.Metadata.Author); author != "" {
		extracted.Author = &author
	}
	if !result.Metadata.Date.IsZero() {
		date := result.Metadata.Date.Format(time.RFC3339)
		extracted.PublicationDate = &date
	}

	return extracted, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
