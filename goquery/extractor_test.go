package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/uninews/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ArticleWithScript(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>T</title></head><body><article><p>Hello</p><script>bad()</script></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>Hello</p></article>", result.ContentHTML)
	assert.Equal(t, "T", result.Title)
}

func TestExtract_FallbackToBody(t *testing.T) {
	t.Parallel()

	html := `<html><body><nav><a href="/">Home</a><a href="/about">About</a></nav><p>Main text</p></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<body><p>Main text</p></body>", result.ContentHTML)
	assert.NotContains(t, result.ContentHTML, "<nav>")
}

func TestExtract_EmptyArticleFallsBackToBody(t *testing.T) {
	t.Parallel()

	// The article cleans to blank (whitespace only), so the locator must
	// fall back to body and return its cleaned content.
	html := `<html><body><article>   </article><p>Elsewhere</p></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<body><p>Elsewhere</p></body>", result.ContentHTML)
}

func TestExtract_NonEmptyArticleNeverFallsBack(t *testing.T) {
	t.Parallel()

	html := `<html><body><div>Sidebar noise</div><article><p>Story</p></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>Story</p></article>", result.ContentHTML)
	assert.NotContains(t, result.ContentHTML, "Sidebar")
}

func TestExtract_SkipTagsRemovedAtAnyDepth(t *testing.T) {
	t.Parallel()

	html := `<html><body><article>
		<div><section><iframe src="x"></iframe><p>Deep <svg><circle/></svg>text</p></section></div>
		<aside>related</aside>
		<form><input><button>Go</button></form>
	</article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	for _, tag := range []string{"<iframe", "<svg", "<aside", "<form", "<input", "<button", "<script", "<style"} {
		assert.NotContains(t, result.ContentHTML, tag)
	}
	assert.Contains(t, result.ContentHTML, "Deep text")
}

func TestExtract_EmptyWrappersEliminated(t *testing.T) {
	t.Parallel()

	// Containers whose children all clean to nothing must vanish rather
	// than survive as empty tags.
	html := `<html><body><article>
		<div><div><script>x()</script></div></div>
		<p></p>
		<p>Kept</p>
	</article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>Kept</p></article>", result.ContentHTML)
	assert.NotContains(t, result.ContentHTML, "<div></div>")
}

func TestExtract_WhitespaceOnlyDocument(t *testing.T) {
	t.Parallel()

	html := `<html><body><article>  <div>
	</div>  </article><div>  </div></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Empty(t, result.ContentHTML)
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><h1>Title</h1><p>Hello <b>world</b></p><script>x()</script></article></body></html>`
	e := goquery.NewExtractor()

	first, err := e.Extract(html)
	require.NoError(t, err)
	require.NotEmpty(t, first.ContentHTML)

	second, err := e.Extract(first.ContentHTML)
	require.NoError(t, err)

	assert.Equal(t, first.ContentHTML, second.ContentHTML)
}

func TestExtract_Metadata(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<title>  Breaking
		News  </title>
		<meta property="og:image" content="https://example.com/hero.jpg">
		<meta property="article:published_time" content="2024-01-15T10:30:00Z">
		<meta name="author" content="Jane Doe">
	</head><body><article><p>Body</p></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Breaking News", result.Title)
	assert.Equal(t, "https://example.com/hero.jpg", result.FeaturedImageURL)
	require.NotNil(t, result.PublicationDate)
	assert.Equal(t, "2024-01-15T10:30:00Z", *result.PublicationDate)
	require.NotNil(t, result.Author)
	assert.Equal(t, "Jane Doe", *result.Author)
}

func TestExtract_MetadataAbsent(t *testing.T) {
	t.Parallel()

	html := `<html><head></head><body><article><p>Body</p></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Empty(t, result.Title)
	assert.Empty(t, result.FeaturedImageURL)
	assert.Nil(t, result.PublicationDate)
	assert.Nil(t, result.Author)
}

func TestExtract_MetadataIndependentOfContent(t *testing.T) {
	t.Parallel()

	head := `<head><title>T</title><meta name="author" content="Jane Doe"></head>`
	withContent := `<html>` + head + `<body><article><p>Body</p></article></body></html>`
	withoutContent := `<html>` + head + `<body><script>x()</script></body></html>`

	e := goquery.NewExtractor()

	a, err := e.Extract(withContent)
	require.NoError(t, err)
	b, err := e.Extract(withoutContent)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ContentHTML)
	assert.Empty(t, b.ContentHTML)
	assert.Equal(t, a.Title, b.Title)
	require.NotNil(t, b.Author)
	assert.Equal(t, *a.Author, *b.Author)
}

func TestExtract_TextNodesJoinedWithSpaces(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><p>Hello <b>brave</b> world</p></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>Hello <b>brave</b> world</p></article>", result.ContentHTML)
}

func TestExtract_FirstArticleWins(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><p>First</p></article><article><p>Second</p></article></body></html>`

	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>First</p></article>", result.ContentHTML)
}

func TestExtract_WithSkipTags(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><figure>chrome</figure><p>Text</p></article></body></html>`

	result, err := goquery.NewExtractor(goquery.WithSkipTags("figure")).Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "<article><p>Text</p></article>", result.ContentHTML)
}

func TestExtract_DeepNesting(t *testing.T) {
	t.Parallel()

	// Pathologically deep documents must still clean correctly.
	depth := 200
	var b strings.Builder
	b.WriteString("<html><body><article>")
	for range depth {
		b.WriteString("<div>")
	}
	b.WriteString("<p>Core</p>")
	for range depth {
		b.WriteString("</div>")
	}
	b.WriteString("</article></body></html>")

	result, err := goquery.NewExtractor().Extract(b.String())
	require.NoError(t, err)

	assert.Contains(t, result.ContentHTML, "<p>Core</p>")
	assert.True(t, strings.HasPrefix(result.ContentHTML, "<article>"))
}
