package orchestrator

import (
	"context"

	"github.com/convoy-ai/convoy/model"
)

// Generator is the free-form text generation collaborator used by the
// reasoning loop for thought, task and termination-decision calls.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, system, prompt string) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

// NewModelGenerator adapts a model.Model to the Generator interface.
func NewModelGenerator(m model.Model) Generator {
	return GeneratorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return model.Complete(ctx, m, system, prompt)
	})
}
