// Package anthropic implements uninews.Generator using the Anthropic API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/uninews"
)

// DefaultModel is used when no model is configured.
const DefaultModel = string(anthropic.ModelClaudeSonnet4_20250514)

// maxTokens bounds the response; the Anthropic API requires an explicit
// output token limit on every request.
const maxTokens = 8192

// Ensure Generator implements uninews.Generator at compile time.
var _ uninews.Generator = (*Generator)(nil)

// Generator sends message requests to Anthropic. The credential is
// checked lazily so a missing key surfaces as a rewrite-stage error.
type Generator struct {
	client anthropic.Client
	apiKey string
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel. The API key may be empty; Generate then fails with
// EUNAUTHORIZED.
func NewGenerator(apiKey, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	g := &Generator{apiKey: apiKey, model: model}
	if apiKey != "" {
		g.client = anthropic.NewClient(option.WithAPIKey(apiKey))
	}
	return g
}

// Generate sends the instruction and payload to Anthropic and returns
// the generated text. Multiple text blocks in the response are
// concatenated.
func (g *Generator) Generate(ctx context.Context, instruction, payload string) (string, error) {
	if g.apiKey == "" {
		return "", uninews.Errorf(uninews.EUNAUTHORIZED, "ANTHROPIC_API_KEY environment variable must be set")
	}

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: instruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(payload)),
		},
	})
	if err != nil {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "anthropic: %v", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 {
		return "", uninews.Errorf(uninews.EINTERNAL, "anthropic returned no text content")
	}

	return b.String(), nil
}
