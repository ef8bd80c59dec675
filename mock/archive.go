package mock

import (
	"context"

	"github.com/fwojciec/uninews"
)

var _ uninews.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of uninews.ArchiveService.
type ArchiveService struct {
	SaveArticleFn      func(ctx context.Context, url string, article *uninews.Article) (*uninews.StoredArticle, bool, error)
	FindArticleByURLFn func(ctx context.Context, url string) (*uninews.StoredArticle, error)
	ListArticlesFn     func(ctx context.Context, limit, offset int) ([]*uninews.StoredArticle, error)
}

func (s *ArchiveService) SaveArticle(ctx context.Context, url string, article *uninews.Article) (*uninews.StoredArticle, bool, error) {
	return s.SaveArticleFn(ctx, url, article)
}

func (s *ArchiveService) FindArticleByURL(ctx context.Context, url string) (*uninews.StoredArticle, error) {
	return s.FindArticleByURLFn(ctx, url)
}

func (s *ArchiveService) ListArticles(ctx context.Context, limit, offset int) ([]*uninews.StoredArticle, error) {
	return s.ListArticlesFn(ctx, limit, offset)
}
