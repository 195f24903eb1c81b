package memory

import (
	"context"
	"sync"

	"github.com/convoy-ai/convoy/core"
)

// InMemoryLedger is a process-local core.Ledger. Threads are created
// implicitly on first write and never deleted.
//
// Concurrency: a map-level RWMutex guards thread creation while each thread
// carries its own mutex, giving a per-thread single-writer discipline.
// Concurrent writes on the same thread serialize in arrival order; writes on
// different threads proceed independently.
type InMemoryLedger struct {
	mu      sync.RWMutex
	threads map[string]*threadLog
}

type threadLog struct {
	mu       sync.Mutex
	messages []core.Message
}

// NewInMemoryLedger constructs an empty in-memory ledger.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{threads: make(map[string]*threadLog)}
}

// Store appends a message to the thread's ledger.
func (l *InMemoryLedger) Store(ctx context.Context, threadID, sender, content string) error {
	if err := ctx.Err(); err != nil {
		return &core.StorageError{ThreadID: threadID, Err: err}
	}

	t := l.thread(threadID)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, core.NewMessage(threadID, sender, content))

	return nil
}

// History returns a copy of the thread's ordered message sequence. Unknown
// threads yield an empty history, not an error.
func (l *InMemoryLedger) History(ctx context.Context, threadID string) ([]core.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, &core.StorageError{ThreadID: threadID, Err: err}
	}

	l.mu.RLock()
	t, ok := l.threads[threadID]
	l.mu.RUnlock()
	if !ok {
		return []core.Message{}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]core.Message, len(t.messages))
	copy(messages, t.messages)

	return messages, nil
}

// thread returns the log for threadID, creating it lazily.
func (l *InMemoryLedger) thread(threadID string) *threadLog {
	l.mu.RLock()
	t, ok := l.threads[threadID]
	l.mu.RUnlock()
	if ok {
		return t
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok = l.threads[threadID]; ok {
		return t
	}
	t = &threadLog{}
	l.threads[threadID] = t

	return t
}
