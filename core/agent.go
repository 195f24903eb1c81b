package core

import "context"

// Agent is the worker contract consumed by the orchestrators.
//
// Agents are opaque: given a task description they produce text, either all
// at once (Invoke) or as a lazy finite sequence of chunks (InvokeStream).
// The thread id is passed through so memory-capable agents can scope any
// internal context to the conversation; the orchestrator itself owns the
// ledger writes around the call.
//
// Implementations must:
//   - Respect context cancellation on both paths
//   - Close both channels returned by InvokeStream when the stream ends
//   - Report backend failures as (or wrapped in) *AgentError
type Agent interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, task, threadID string) (string, error)

	// InvokeStream produces the response incrementally. The chunk channel is
	// finite and not restartable; the error channel carries at most one
	// terminal error and is closed afterwards.
	InvokeStream(ctx context.Context, task, threadID string) (<-chan string, <-chan error)
}

// Descriptor carries the identifying details of a registered agent used as
// classification input and in task-generation prompts.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StreamSink receives response chunks as they are produced. Orchestrators
// forward every chunk to the sink immediately and also accumulate them into
// the final text, so the concatenation of sink chunks always equals the
// non-streamed return value.
type StreamSink func(chunk string)
