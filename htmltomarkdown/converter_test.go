package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Markets rallied on Tuesday.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Markets rallied on Tuesday.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Election Results</h1><h2>Regional Breakdown</h2><h3>Turnout</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Election Results")
		assert.Contains(t, md, "## Regional Breakdown")
		assert.Contains(t, md, "### Turnout")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://example.com/report">full report</a> for details.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[full report](https://example.com/report)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First point</li><li>Second point</li></ul><ol><li>Step one</li><li>Step two</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First point")
		assert.Contains(t, md, "- Second point")
		assert.Contains(t, md, "1. Step one")
		assert.Contains(t, md, "2. Step two")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Breaking</strong> and <em>developing</em> story.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Breaking**")
		assert.Contains(t, md, "*developing*")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		html := `<blockquote><p>We remain committed, the spokesperson said.</p></blockquote>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "> We remain committed, the spokesperson said.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Party</th><th>Seats</th></tr></thead>
<tbody><tr><td>Red</td><td>120</td></tr><tr><td>Blue</td><td>98</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Party")
		assert.Contains(t, md, "Seats")
		assert.Contains(t, md, "Red")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, uninews.EINVALID, uninews.ErrorCode(err))
	})

	t.Run("handles a full article body", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h1>Storm Hits Coast</h1>
<p>Residents were evacuated overnight as the storm made landfall.</p>
<h2>Damage Assessment</h2>
<p>Officials estimate <strong>thousands</strong> of homes lost power.</p>
<blockquote><p>The worst is behind us, the governor said.</p></blockquote>
<ul><li>Shelters remain open</li><li>Schools closed through Friday</li></ul>
</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Storm Hits Coast")
		assert.Contains(t, md, "## Damage Assessment")
		assert.Contains(t, md, "**thousands**")
		assert.Contains(t, md, "> The worst is behind us, the governor said.")
		assert.Contains(t, md, "- Shelters remain open")
	})
}
