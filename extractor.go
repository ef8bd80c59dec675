package uninews

// ExtractResult holds the content and metadata extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, collapsed to single spaces and trimmed.
	// Empty if the document has no title.
	Title string

	// ContentHTML is the main article content as a cleaned HTML fragment.
	// Noise elements (scripts, navigation, ads, forms) have been removed.
	// Empty means no meaningful content was found.
	ContentHTML string

	// FeaturedImageURL is the og:image URL, or empty if absent.
	FeaturedImageURL string

	// PublicationDate is the raw article:published_time value. It is nil
	// when the page carries no publication date; no date parsing or
	// validation is performed.
	PublicationDate *string

	// Author is the author meta value, nil when absent. The nil/empty
	// distinction is deliberate: consumers branch on presence, not
	// emptiness.
	Author *string
}

// Extractor extracts the main article content and head metadata from raw
// HTML. Metadata extraction is independent of content extraction: a page
// that yields no content may still yield a title and metadata.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
