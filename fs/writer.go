// Package fs writes scraped articles to disk as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/uninews"
)

// URLToFilename converts an article URL to a flat Markdown filename.
// Example: https://news.example.com/politics/story-123 → news.example.com-politics-story-123.md
func URLToFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", uninews.Errorf(uninews.EINVALID, "URL has no host: %s", rawURL)
	}

	slug := u.Host + strings.ReplaceAll(u.Path, "/", "-")
	slug = strings.Trim(slug, "-")

	// Strip characters that are unsafe in filenames.
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '.' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	return b.String() + ".md", nil
}

// FormatArticleFile renders an article with YAML frontmatter for file
// output. Date and author lines are omitted when unknown.
func FormatArticleFile(sourceURL string, article *uninews.Article, scrapedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	if article.FeaturedImageURL != "" {
		b.WriteString("\nimage: ")
		b.WriteString(article.FeaturedImageURL)
	}
	if article.PublicationDate != nil {
		b.WriteString("\npublished: ")
		b.WriteString(*article.PublicationDate)
	}
	if article.Author != nil {
		b.WriteString("\nauthor: ")
		b.WriteString(*article.Author)
	}
	b.WriteString("\nscraped: ")
	b.WriteString(scrapedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(article.Content)
	return b.String()
}

// Writer writes articles as Markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes a successful scrape result to disk and returns
// the path of the written file. Failed records are rejected.
func (w *Writer) WriteArticle(ctx context.Context, sourceURL string, article *uninews.Article) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if article == nil || article.Failed() {
		return "", uninews.Errorf(uninews.EINVALID, "cannot write a failed scrape result")
	}

	name, err := URLToFilename(sourceURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content := FormatArticleFile(sourceURL, article, time.Now().UTC())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
