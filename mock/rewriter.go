package mock

import (
	"context"

	"github.com/fwojciec/uninews"
)

var _ uninews.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of uninews.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, article *uninews.Article, language string) (*uninews.Article, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, article *uninews.Article, language string) (*uninews.Article, error) {
	return r.RewriteFn(ctx, article, language)
}
