package uninews

// Converter converts HTML to Markdown deterministically, without a
// language model. Used by offline mode as a rewrite substitute.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g. from an Extractor).
	Convert(html string) (string, error)
}
