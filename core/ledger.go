package core

import "context"

// Ledger is the append-only per-thread conversation history collaborator.
//
// Orchestrators treat the ledger as an observability aid, not a correctness
// dependency: Store failures surface as *StorageError and are logged and
// swallowed by the callers, never propagated to the orchestration caller.
//
// Implementations must serialize writes per thread id so that concurrent
// orchestrations on the same thread never interleave message order, while
// writes on different threads proceed independently.
type Ledger interface {
	Store(ctx context.Context, threadID, sender, content string) error
}

// HistoryReader is an optional extension for ledgers that can return the
// ordered message history of a thread.
type HistoryReader interface {
	History(ctx context.Context, threadID string) ([]Message, error)
}
