package agent

import (
	"context"

	"github.com/convoy-ai/convoy/core"
)

// TaskFunc is the implementation signature wrapped by FuncAgent.
type TaskFunc func(ctx context.Context, task, threadID string) (string, error)

// FuncAgent is a generic adapter that exposes a plain Go function as a
// Convoy worker. It is the natural shape for deterministic capabilities
// (lookups, calculations, fixed-format reports) and for test stubs.
//
// A FuncAgent has no internal mutable state after construction and is safe
// for concurrent use by multiple goroutines.
type FuncAgent struct {
	BaseAgent
	fn TaskFunc
}

// NewFuncAgent constructs a FuncAgent from a name, description and function.
func NewFuncAgent(name, description string, fn TaskFunc) *FuncAgent {
	a := &FuncAgent{BaseAgent: NewBaseAgent(name), fn: fn}
	if description != "" {
		a.SetDescription(description)
	}
	return a
}

// Invoke implements core.Agent.
func (a *FuncAgent) Invoke(ctx context.Context, task, threadID string) (string, error) {
	text, err := a.fn(ctx, task, threadID)
	if err != nil {
		return "", core.NewAgentError(a.Name(), err)
	}
	return text, nil
}

// InvokeStream implements core.Agent by delivering the function's whole
// response as a single chunk, preserving streamed / non-streamed text
// equivalence.
func (a *FuncAgent) InvokeStream(ctx context.Context, task, threadID string) (<-chan string, <-chan error) {
	chunks := make(chan string, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		text, err := a.fn(ctx, task, threadID)
		if err != nil {
			errs <- core.NewAgentError(a.Name(), err)
			return
		}
		select {
		case chunks <- text:
		case <-ctx.Done():
			errs <- core.NewAgentError(a.Name(), ctx.Err())
		}
	}()

	return chunks, errs
}
