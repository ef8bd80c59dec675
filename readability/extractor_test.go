package readability_test

import (
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Test Article</title></head><body>
		<nav><a href="/">Home</a></nav>
		<article>
			<h1>Test Article</h1>
			<p>This is the first paragraph of the article with enough text to be considered meaningful content by the readability scoring.</p>
			<p>This is the second paragraph, also carrying enough prose for the extractor to keep it around in the output.</p>
		</article>
	</body></html>`

	result, err := readability.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Test Article", result.Title)
	assert.Contains(t, result.ContentHTML, "first paragraph")
}

func TestExtract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")
	require.Error(t, err)
	assert.Equal(t, uninews.EINVALID, uninews.ErrorCode(err))
}
