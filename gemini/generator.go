// Package gemini implements uninews.Generator using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/uninews"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements uninews.Generator at compile time.
var _ uninews.Generator = (*Generator)(nil)

// Generator sends generation requests to the Gemini API. The client is
// created per call; the credential is checked lazily so a missing key
// surfaces as a rewrite-stage error, not a startup error.
type Generator struct {
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
	return &Generator{apiKey: apiKey, model: model}
}

// Generate sends the instruction and payload to Gemini and returns the
// generated text.
func (g *Generator) Generate(ctx context.Context, instruction, payload string) (string, error) {
	if g.apiKey == "" {
		return "", uninews.Errorf(uninews.EUNAUTHORIZED, "GEMINI_API_KEY environment variable must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "gemini: %v", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: payload}},
		}},
		buildConfig(instruction),
	)
	if err != nil {
		return "", uninews.Errorf(uninews.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", uninews.Errorf(uninews.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}
