package uninews

// FormatArticle renders an article in the human-readable two-line form:
// title, blank line, content. Failed records render their error message
// instead.
func FormatArticle(a *Article) string {
	if a.Failed() {
		return "error: " + a.Err
	}
	return a.Title + "\n\n" + a.Content
}
