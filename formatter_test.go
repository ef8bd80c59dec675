package uninews_test

import (
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/stretchr/testify/assert"
)

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	a := &uninews.Article{Title: "Breaking News", Content: "# Heading\n\nBody."}

	assert.Equal(t, "Breaking News\n\n# Heading\n\nBody.", uninews.FormatArticle(a))
}

func TestFormatArticle_Failed(t *testing.T) {
	t.Parallel()

	a := uninews.Fail("could not extract meaningful content from the page")

	assert.Equal(t, "error: could not extract meaningful content from the page", uninews.FormatArticle(a))
}
