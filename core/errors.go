package core

import "fmt"

// AgentError reports a worker backend failure during Invoke / InvokeStream.
// Outside a reasoning loop it propagates to the caller wrapped in an
// OrchestrationError; inside the loop it is captured as the step's
// observation and consumes budget.
type AgentError struct {
	Agent string
	Err   error
}

// Error implements the error interface.
func (e *AgentError) Error() string {
	return fmt.Sprintf("agent %s: %v", e.Agent, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *AgentError) Unwrap() error { return e.Err }

// NewAgentError wraps err as a backend failure of the named agent.
func NewAgentError(agent string, err error) *AgentError {
	return &AgentError{Agent: agent, Err: err}
}

// StorageError reports a ledger write failure. Always caught and logged by
// the orchestrators, never surfaced to their callers.
type StorageError struct {
	ThreadID string
	Err      error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger write for thread %s: %v", e.ThreadID, e.Err)
}

// Unwrap returns the underlying storage error.
func (e *StorageError) Unwrap() error { return e.Err }

// MalformedActionError reports action text that does not match the strict
// two-line "agent: <name>" / "task: <description>" contract. Recoverable:
// the reasoning loop falls back to its default agent or terminates early
// with the current thought.
type MalformedActionError struct {
	Raw    string
	Reason string
}

// Error implements the error interface.
func (e *MalformedActionError) Error() string {
	return fmt.Sprintf("malformed action (%s): %q", e.Reason, e.Raw)
}

// OrchestrationError is the single error type surfaced to orchestration
// callers. It wraps the underlying cause (typically an *AgentError) so
// callers can branch with errors.As.
type OrchestrationError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("orchestrate %s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *OrchestrationError) Unwrap() error { return e.Err }
