package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/uninews"
)

// instructionFormat is the system instruction for the rewrite model. The
// whole article record travels as JSON so the model has title, author
// and date context even though only the content is rewritten.
const instructionFormat = "You are an expert markdown formatter and translator. " +
	"Given a JSON object representing a news article, extract and output only the text content " +
	"in Markdown format in %[1]s. Remove all HTML tags and extra markup. " +
	"Do not include any JSON keys or metadata, only the formatted content. " +
	"If %[1]s is not supported, default to " + uninews.DefaultLanguage + "."

// Ensure Rewriter implements uninews.Rewriter at compile time.
var _ uninews.Rewriter = (*Rewriter)(nil)

// Rewriter implements uninews.Rewriter over a language-model Generator.
type Rewriter struct {
	Generator uninews.Generator
}

// NewRewriter creates a Rewriter backed by the given Generator.
func NewRewriter(g uninews.Generator) *Rewriter {
	return &Rewriter{Generator: g}
}

// Rewrite sends the article to the model and returns a copy with
// Content replaced by the model's raw text response. The input article
// is never mutated; on any failure the caller must not consider the
// content updated.
func (r *Rewriter) Rewrite(ctx context.Context, article *uninews.Article, language string) (*uninews.Article, error) {
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = uninews.DefaultLanguage
	}

	payload, err := json.Marshal(article)
	if err != nil {
		return nil, uninews.Errorf(uninews.EINTERNAL, "failed to serialize article to JSON: %v", err)
	}

	instruction := fmt.Sprintf(instructionFormat, lang)
	prompt := fmt.Sprintf(
		"Convert the following article JSON into Markdown formatted text in %s language, nothing else:\n\n%s",
		lang, payload,
	)

	text, err := r.Generator.Generate(ctx, instruction, prompt)
	if err != nil {
		return nil, err
	}

	rewritten := article.Clone()
	rewritten.Content = text
	return rewritten, nil
}

// Ensure OfflineRewriter implements uninews.Rewriter at compile time.
var _ uninews.Rewriter = (*OfflineRewriter)(nil)

// OfflineRewriter implements uninews.Rewriter with a deterministic
// HTML-to-Markdown converter instead of a language model. No credential
// is needed and no translation happens; the language argument is
// ignored.
type OfflineRewriter struct {
	Converter uninews.Converter
}

// Rewrite converts the article content to Markdown locally.
func (r *OfflineRewriter) Rewrite(ctx context.Context, article *uninews.Article, language string) (*uninews.Article, error) {
	md, err := r.Converter.Convert(article.Content)
	if err != nil {
		return nil, err
	}

	rewritten := article.Clone()
	rewritten.Content = strings.TrimSpace(md)
	return rewritten, nil
}
