package agent

import (
	"context"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/model"
)

// LLMAgentOptions configures an LLMAgent instance.
type LLMAgentOptions struct {
	// Description advertised to classifiers; defaults to "Agent <name>".
	Description string
	// SystemPrompt is sent as the system instruction on every call.
	SystemPrompt string
}

// LLMAgent is a model-backed worker. It forwards the task to its language
// model and returns (or streams) the completion verbatim.
type LLMAgent struct {
	BaseAgent
	llm          model.Model
	systemPrompt string
}

// NewLLMAgent creates a model-backed agent.
func NewLLMAgent(name string, llm model.Model, optFns ...func(o *LLMAgentOptions)) *LLMAgent {
	opts := LLMAgentOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	a := &LLMAgent{
		BaseAgent:    NewBaseAgent(name),
		llm:          llm,
		systemPrompt: opts.SystemPrompt,
	}
	if opts.Description != "" {
		a.SetDescription(opts.Description)
	}

	return a
}

// Invoke implements core.Agent by draining a non-streaming generation.
func (a *LLMAgent) Invoke(ctx context.Context, task, threadID string) (string, error) {
	text, err := model.Complete(ctx, a.llm, a.systemPrompt, task)
	if err != nil {
		return "", core.NewAgentError(a.Name(), err)
	}
	return text, nil
}

// InvokeStream implements core.Agent. Partial model responses map one-to-one
// onto chunks; the final non-partial response is not re-emitted since its
// text equals the accumulated partials.
func (a *LLMAgent) InvokeStream(ctx context.Context, task, threadID string) (<-chan string, <-chan error) {
	chunks := make(chan string, 16)
	errs := make(chan error, 1)

	respCh, errCh := a.llm.Generate(ctx, model.Request{
		System: a.systemPrompt,
		Prompt: task,
		Stream: true,
	})

	go func() {
		defer close(chunks)
		defer close(errs)

		streamed := false
		for {
			select {
			case <-ctx.Done():
				errs <- core.NewAgentError(a.Name(), ctx.Err())
				return
			case err, ok := <-errCh:
				if ok && err != nil {
					errs <- core.NewAgentError(a.Name(), err)
					return
				}
				errCh = nil
			case resp, ok := <-respCh:
				if !ok {
					if errCh != nil {
						if err, open := <-errCh; open && err != nil {
							errs <- core.NewAgentError(a.Name(), err)
						}
					}
					return
				}
				if resp.Partial {
					streamed = true
					select {
					case chunks <- resp.Text:
					case <-ctx.Done():
						errs <- core.NewAgentError(a.Name(), ctx.Err())
						return
					}
				} else if !streamed && resp.Text != "" {
					// Model skipped partials; deliver the full text as one chunk.
					select {
					case chunks <- resp.Text:
					case <-ctx.Done():
						errs <- core.NewAgentError(a.Name(), ctx.Err())
						return
					}
				}
			}
		}
	}()

	return chunks, errs
}
