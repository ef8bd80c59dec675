package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uninews"
)

// Ensure LoggingRewriter implements uninews.Rewriter.
var _ uninews.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with operation logging.
type LoggingRewriter struct {
	next   uninews.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next uninews.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs the operation.
func (r *LoggingRewriter) Rewrite(ctx context.Context, article *uninews.Article, language string) (rewritten *uninews.Article, err error) {
	defer func(begin time.Time) {
		var bytes int
		if rewritten != nil {
			bytes = len(rewritten.Content)
		}
		r.logger.Info("rewrite",
			"language", language,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rewrite(ctx, article, language)
}
