// Package openai implements uninews.Generator using the OpenAI API.
// This is the default rewrite backend.
package openai

import (
	"context"

	"github.com/fwojciec/uninews"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o"

// Ensure Generator implements uninews.Generator at compile time.
var _ uninews.Generator = (*Generator)(nil)

// Generator sends chat completion requests to OpenAI. The credential is
// checked lazily so a missing key surfaces as a rewrite-stage error.
type Generator struct {
	client openai.Client
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
		g.client = openai.NewClient(option.WithAPIKey(apiKey))
	}
	return g
}

// Generate sends the instruction and payload to OpenAI and returns the
// generated text.
func (g *Generator) Generate(ctx context.Context, instruction, payload string) (string, error) {
	if g.apiKey == "" {
		return "", uninews.Errorf(uninews.EUNAUTHORIZED, "OPENAI_API_KEY environment variable must be set")
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(payload),
		},
	})
	if err != nil {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "openai: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", uninews.Errorf(uninews.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
