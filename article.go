package uninews

// Article is the result of a single scrape invocation: the extracted
// article data on success, or an error carrier on failure. It is created
// once per invocation, mutated in place as pipeline stages succeed, and
// never persisted or shared across invocations.
//
// Content holds the cleaned HTML fragment before the rewrite stage and
// Markdown after it.
type Article struct {
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	FeaturedImageURL string  `json:"featured_image_url"`
	PublicationDate  *string `json:"publication_date"`
	Author           *string `json:"author"`

	// Err is empty on success. When non-empty the record is a failure
	// carrier and Failed reports true regardless of the other fields.
	Err string `json:"error"`
}

// Fail returns an Article that carries only the given error message.
// All content and metadata fields are cleared.
func Fail(msg string) *Article {
	return &Article{Err: msg}
}

// Failed reports whether the article is a failure carrier. This is the
// single failure signal across the pipeline boundary; callers must not
// inspect Content on a failed record.
func (a *Article) Failed() bool {
	return a.Err != ""
}

// Clone returns a copy of the article. Pointer-valued metadata fields are
// duplicated so mutating the copy cannot affect the original.
func (a *Article) Clone() *Article {
	clone := *a
	if a.PublicationDate != nil {
		d := *a.PublicationDate
		clone.PublicationDate = &d
	}
	if a.Author != nil {
		au := *a.Author
		clone.Author = &au
	}
	return &clone
}
