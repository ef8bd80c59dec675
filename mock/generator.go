package mock

import (
	"context"

	"github.com/fwojciec/uninews"
)

var _ uninews.Generator = (*Generator)(nil)

// Generator is a mock implementation of uninews.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, instruction, payload string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, instruction, payload string) (string, error) {
	return g.GenerateFn(ctx, instruction, payload)
}
