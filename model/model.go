// Package model defines the text generation collaborator behind LLM-backed
// agents, the LLM classifier and the reasoning loop. Providers adapt their
// APIs to the Model interface; the rest of the module never imports a vendor
// SDK directly.
package model

import (
	"context"
	"fmt"
	"strings"
)

// Request captures the normalized generation input.
type Request struct {
	// System is the instruction / system prompt, may be empty.
	System string `json:"system,omitempty"`
	// Prompt is the user-facing input to complete.
	Prompt string `json:"prompt"`
	// Stream requests incremental partial responses.
	Stream bool `json:"stream,omitempty"`
}

// Response is a (partial or final) chunk emitted by a model.
type Response struct {
	// Partial marks a streaming fragment; the final response repeats the
	// full accumulated text with Partial false.
	Partial bool   `json:"partial"`
	Text    string `json:"text"`
	// FinishReason is set on the final response ("stop", "length", ...).
	FinishReason string `json:"finish_reason,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal interface required to drive generation. Generate
// returns a finite response channel (partials followed by one final
// response) and an error channel carrying at most one terminal error; both
// are closed when generation ends.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// Complete drains a non-streaming Generate call into a single string. This
// is the synchronous collaborator shape used by the reasoning loop and the
// LLM classifier.
func Complete(ctx context.Context, m Model, system, prompt string) (string, error) {
	respCh, errCh := m.Generate(ctx, Request{System: system, Prompt: prompt})

	var sb strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case err, ok := <-errCh:
			if ok && err != nil {
				return "", err
			}
			errCh = nil
		case resp, ok := <-respCh:
			if !ok {
				if errCh != nil {
					if err, open := <-errCh; open && err != nil {
						return "", err
					}
				}
				return sb.String(), nil
			}
			if !resp.Partial {
				sb.Reset()
				sb.WriteString(resp.Text)
			}
		}
	}
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
type MockModel struct {
	info      Info
	responses map[string]string
	// DefaultResponse is returned when no canned response matches the prompt.
	DefaultResponse string
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate implements Model; emits optional streaming word chunks then the
// final response.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)

		full, ok := m.responses[req.Prompt]
		if !ok {
			full = m.DefaultResponse
		}
		if full == "" {
			full = fmt.Sprintf("mock response to: %s", req.Prompt)
		}
		if req.Stream {
			for _, word := range strings.SplitAfter(full, " ") {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{Partial: true, Text: word}:
				}
			}
		}
		respCh <- Response{Text: full, FinishReason: "stop"}
	}()

	return respCh, errCh
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
