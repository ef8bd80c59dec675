package uninews

import "context"

// Generator is the narrow capability interface over a language-model
// backend: one blocking request, one text response. Keeping the surface
// this small decouples the rewrite stage from any vendor protocol and
// makes it testable with a deterministic stub.
type Generator interface {
	// Generate sends a system instruction and a user payload to the model
	// and returns the generated text. No streaming, no retries.
	Generate(ctx context.Context, instruction, payload string) (string, error)
}
