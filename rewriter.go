package uninews

import "context"

// DefaultLanguage is the output language used when the requested
// language is blank or unsupported.
const DefaultLanguage = "english"

// Rewriter transforms a scraped article's content into Markdown in the
// requested language.
type Rewriter interface {
	// Rewrite returns a copy of the article with Content replaced by its
	// Markdown rendition; all other fields are untouched. On failure the
	// input article is not mutated and the returned error is
	// distinguishable (missing credential, serialization, transport).
	// A blank language selects DefaultLanguage.
	Rewrite(ctx context.Context, article *Article, language string) (*Article, error)
}
