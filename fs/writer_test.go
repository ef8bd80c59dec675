package fs_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestURLToFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "host and path",
			url:  "https://news.example.com/politics/story-123",
			want: "news.example.com-politics-story-123.md",
		},
		{
			name: "root path",
			url:  "https://news.example.com/",
			want: "news.example.com.md",
		},
		{
			name: "unsafe characters replaced",
			url:  "https://news.example.com/2024/01/story?id=5",
			want: "news.example.com-2024-01-story.md",
		},
		{
			name:    "no host",
			url:     "not-a-url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToFilename(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatArticleFile(t *testing.T) {
	t.Parallel()

	article := &uninews.Article{
		Title:            "Big News",
		Content:          "# Big News\n\nBody.",
		FeaturedImageURL: "https://example.com/img.jpg",
		PublicationDate:  ptr("2024-01-01"),
		Author:           ptr("Jane Roe"),
	}

	out := fs.FormatArticleFile("https://example.com/story", article, time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.Contains(t, out, "source: https://example.com/story\n")
	assert.Contains(t, out, "title: Big News\n")
	assert.Contains(t, out, "image: https://example.com/img.jpg\n")
	assert.Contains(t, out, "published: 2024-01-01\n")
	assert.Contains(t, out, "author: Jane Roe\n")
	assert.Contains(t, out, "scraped: 2024-02-03\n")
	assert.True(t, strings.HasSuffix(out, "---\n\n# Big News\n\nBody."))
}

func TestFormatArticleFile_OmitsUnknownFields(t *testing.T) {
	t.Parallel()

	article := &uninews.Article{Title: "Title", Content: "Body."}

	out := fs.FormatArticleFile("https://example.com/story", article, time.Now())

	assert.NotContains(t, out, "image:")
	assert.NotContains(t, out, "published:")
	assert.NotContains(t, out, "author:")
}

func TestWriteArticle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	article := &uninews.Article{Title: "Big News", Content: "# Big News\n\nBody."}
	path, err := w.WriteArticle(context.Background(), "https://news.example.com/story", article)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Big News")
	assert.Contains(t, string(data), "# Big News")
	assert.True(t, strings.HasSuffix(path, "news.example.com-story.md"))
}

func TestWriteArticle_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.WriteArticle(ctx, "https://news.example.com/story", &uninews.Article{Title: "T", Content: "B"})
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteArticle_RejectsFailedRecord(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter(t.TempDir())

	_, err := w.WriteArticle(context.Background(), "https://news.example.com/story", uninews.Fail("boom"))
	require.Error(t, err)
	assert.Equal(t, uninews.EINVALID, uninews.ErrorCode(err))
}
