// Package goquery provides the default uninews.Extractor built on CSS
// selection over the parsed document tree. Content extraction prefers
// the first <article> element and falls back to <body>; the selected
// subtree is rebuilt bottom-up with noise elements and empty branches
// removed. Head metadata is read independently of content extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uninews"
	"golang.org/x/net/html"
)

// defaultSkipTags are the element names treated as non-content noise.
// A matched element is dropped together with its entire subtree.
var defaultSkipTags = []string{
	"script", "style", "noscript", "iframe",
	"header", "footer", "nav", "aside",
	"form", "input", "button",
	"svg", "picture", "source",
}

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor extracts article content and metadata from raw HTML.
type Extractor struct {
	skip map[string]struct{}
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSkipTags adds element names to the default skip set. The default
// set is never reduced; extraction with no options matches the stock
// behavior exactly.
func WithSkipTags(tags ...string) Option {
	return func(e *Extractor) {
		for _, tag := range tags {
			e.skip[strings.ToLower(tag)] = struct{}{}
		}
	}
}

// NewExtractor creates an Extractor with the default skip set.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{skip: make(map[string]struct{}, len(defaultSkipTags))}
	for _, tag := range defaultSkipTags {
		e.skip[tag] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the cleaned article content
// plus head metadata. Metadata is extracted even when no content is
// found; an empty ContentHTML signals extraction failure to the caller.
func (e *Extractor) Extract(rawHTML string) (*uninews.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, uninews.Errorf(uninews.EINVALID, "failed to parse HTML: %v", err)
	}

	return &uninews.ExtractResult{
		Title:            title(doc),
		ContentHTML:      e.locate(doc),
		FeaturedImageURL: metaContent(doc, `meta[property="og:image"]`),
		PublicationDate:  metaContentPtr(doc, `meta[property="article:published_time"]`),
		Author:           metaContentPtr(doc, `meta[name="author"]`),
	}, nil
}

// locate selects the subtree to clean: the first <article> wins if it
// cleans to something non-blank, otherwise <body>. The article anchor
// avoids pulling in sidebars and comment sections that live as siblings
// inside body on semantic news markup.
func (e *Extractor) locate(doc *goquery.Document) string {
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		if cleaned := e.clean(sel.Nodes[0]); strings.TrimSpace(cleaned) != "" {
			return cleaned
		}
	}
	if sel := doc.Find("body").First(); sel.Length() > 0 {
		return e.clean(sel.Nodes[0])
	}
	return ""
}

// clean rebuilds the subtree rooted at n, dropping skip-set elements and
// any element left without content. Children that survive are joined
// with single spaces. Returning an empty string deletes the node: the
// post-order emptiness check is what keeps collapsed containers from
// accumulating as empty wrappers up the tree. Each node is visited
// exactly once.
func (e *Extractor) clean(n *html.Node) string {
	if _, skip := e.skip[n.Data]; skip {
		return ""
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if cleaned := e.clean(c); strings.TrimSpace(cleaned) != "" {
				b.WriteString(cleaned)
				b.WriteByte(' ')
			}
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				b.WriteString(text)
				b.WriteByte(' ')
			}
		}
	}

	content := strings.TrimSpace(b.String())
	if content == "" {
		return ""
	}
	return "<" + n.Data + ">" + content + "</" + n.Data + ">"
}

// title returns the <title> text collapsed to single spaces, or empty.
func title(doc *goquery.Document) string {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// metaContent returns the content attribute of the first element
// matching selector, or empty if absent.
func metaContent(doc *goquery.Document, selector string) string {
	value, _ := doc.Find(selector).First().Attr("content")
	return value
}

// metaContentPtr is like metaContent but preserves the absent/present
// distinction: nil when the selector matches nothing.
func metaContentPtr(doc *goquery.Document, selector string) *string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	value, ok := sel.Attr("content")
	if !ok {
		return nil
	}
	return &value
}
