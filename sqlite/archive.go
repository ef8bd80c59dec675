package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/uninews"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ uninews.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements uninews.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SaveArticle archives a successful scrape result keyed by URL. A
// record whose content hash matches the stored entry is left untouched
// and returned with changed == false.
func (s *ArchiveService) SaveArticle(ctx context.Context, url string, article *uninews.Article) (*uninews.StoredArticle, bool, error) {
	if url == "" {
		return nil, false, uninews.Errorf(uninews.EINVALID, "url is required")
	}
	if article == nil || article.Failed() {
		return nil, false, uninews.Errorf(uninews.EINVALID, "cannot archive a failed scrape result")
	}

	hash := hashContent(article.Content)

	existing, err := s.FindArticleByURL(ctx, url)
	if err != nil && uninews.ErrorCode(err) != uninews.ENOTFOUND {
		return nil, false, err
	}
	if existing != nil && existing.ContentHash == hash {
		return existing, false, nil
	}

	stored := &uninews.StoredArticle{
		ID:               uuid.New().String(),
		URL:              url,
		Title:            article.Title,
		Content:          article.Content,
		FeaturedImageURL: article.FeaturedImageURL,
		PublicationDate:  article.PublicationDate,
		Author:           article.Author,
		ContentHash:      hash,
		// Truncated to seconds so the returned value matches the stored
		// RFC3339 representation exactly.
		ScrapedAt: time.Now().UTC().Truncate(time.Second),
	}
	if existing != nil {
		stored.ID = existing.ID
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, content, content_hash, featured_image_url, publication_date, author, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			featured_image_url = excluded.featured_image_url,
			publication_date = excluded.publication_date,
			author = excluded.author,
			scraped_at = excluded.scraped_at
	`, stored.ID, stored.URL, stored.Title, stored.Content, stored.ContentHash,
		stored.FeaturedImageURL, stored.PublicationDate, stored.Author,
		stored.ScrapedAt.Format(time.RFC3339))
	if err != nil {
		return nil, false, err
	}

	return stored, true, nil
}

// FindArticleByURL retrieves the archived entry for a URL.
func (s *ArchiveService) FindArticleByURL(ctx context.Context, url string) (*uninews.StoredArticle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, content_hash, featured_image_url, publication_date, author, scraped_at
		FROM articles
		WHERE url = ?
	`, url)

	stored, err := scanStoredArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, uninews.Errorf(uninews.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// ListArticles returns archived entries, most recently scraped first.
func (s *ArchiveService) ListArticles(ctx context.Context, limit, offset int) ([]*uninews.StoredArticle, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, url, title, content, content_hash, featured_image_url, publication_date, author, scraped_at
		FROM articles
		ORDER BY scraped_at DESC, id
	`)
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		args = append(args, offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*uninews.StoredArticle
	for rows.Next() {
		stored, err := scanStoredArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, stored)
	}

	return articles, rows.Err()
}

// scanStoredArticle reads one articles row via the given scan function.
func scanStoredArticle(scan func(dest ...any) error) (*uninews.StoredArticle, error) {
	var stored uninews.StoredArticle
	var scrapedAt string

	err := scan(&stored.ID, &stored.URL, &stored.Title, &stored.Content, &stored.ContentHash,
		&stored.FeaturedImageURL, &stored.PublicationDate, &stored.Author, &scrapedAt)
	if err != nil {
		return nil, err
	}

	stored.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
	}

	return &stored, nil
}
