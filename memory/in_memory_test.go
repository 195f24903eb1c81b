package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/convoy-ai/convoy/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Ledger        = (*InMemoryLedger)(nil)
	_ core.HistoryReader = (*InMemoryLedger)(nil)
)

func TestInMemoryLedger_StoreAndHistory(t *testing.T) {
	l := NewInMemoryLedger()
	ctx := context.Background()

	if err := l.Store(ctx, "t1", "user", "hello"); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if err := l.Store(ctx, "t1", "billing", "[billing] hi"); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	history, err := l.History(ctx, "t1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Sender != "user" || history[0].Content != "hello" {
		t.Fatalf("unexpected first message: %#v", history[0])
	}
	if history[1].Sender != "billing" || history[1].Content != "[billing] hi" {
		t.Fatalf("unexpected second message: %#v", history[1])
	}
	if history[0].ID == "" || history[0].ID == history[1].ID {
		t.Fatalf("expected distinct non-empty message ids")
	}
	if history[0].ThreadID != "t1" {
		t.Fatalf("unexpected thread id %q", history[0].ThreadID)
	}
}

func TestInMemoryLedger_UnknownThreadYieldsEmptyHistory(t *testing.T) {
	l := NewInMemoryLedger()
	history, err := l.History(context.Background(), "missing")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(history))
	}
}

func TestInMemoryLedger_ThreadIsolation(t *testing.T) {
	l := NewInMemoryLedger()
	ctx := context.Background()

	_ = l.Store(ctx, "a", "user", "for a")
	_ = l.Store(ctx, "b", "user", "for b")

	ha, _ := l.History(ctx, "a")
	hb, _ := l.History(ctx, "b")
	if len(ha) != 1 || ha[0].Content != "for a" {
		t.Fatalf("thread a polluted: %#v", ha)
	}
	if len(hb) != 1 || hb[0].Content != "for b" {
		t.Fatalf("thread b polluted: %#v", hb)
	}
}

func TestInMemoryLedger_CanceledContext(t *testing.T) {
	l := NewInMemoryLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Store(ctx, "t1", "user", "never stored")
	if err == nil {
		t.Fatalf("expected error on canceled context")
	}
	var se *core.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *core.StorageError, got %T", err)
	}
	if se.ThreadID != "t1" {
		t.Fatalf("unexpected thread id in error: %q", se.ThreadID)
	}

	history, err := l.History(context.Background(), "t1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("rejected write must not be persisted, got %d messages", len(history))
	}
}

func TestInMemoryLedger_ConcurrentWrites(t *testing.T) {
	l := NewInMemoryLedger()
	ctx := context.Background()

	const writers = 8
	const perWriter = 50
	const threads = 2

	wg := sync.WaitGroup{}
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			threadID := fmt.Sprintf("t%d", w%threads)
			for i := 0; i < perWriter; i++ {
				content := fmt.Sprintf("%s w%d %d", threadID, w, i)
				if err := l.Store(ctx, threadID, fmt.Sprintf("w%d", w), content); err != nil {
					t.Errorf("store error: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for ti := 0; ti < threads; ti++ {
		threadID := fmt.Sprintf("t%d", ti)
		history, err := l.History(ctx, threadID)
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		total += len(history)

		// No thread sees another thread's writes.
		for _, m := range history {
			if m.ThreadID != threadID || !strings.HasPrefix(m.Content, threadID+" ") {
				t.Fatalf("thread %s polluted by %#v", threadID, m)
			}
		}

		// Each writer's messages appear in its own issue order.
		next := map[string]int{}
		for _, m := range history {
			var gotThread string
			var writer, seq int
			if _, err := fmt.Sscanf(m.Content, "%s w%d %d", &gotThread, &writer, &seq); err != nil {
				t.Fatalf("unparseable content %q: %v", m.Content, err)
			}
			if want := next[m.Sender]; seq != want {
				t.Fatalf("writer %s out of order in %s: expected seq %d, got %d", m.Sender, threadID, want, seq)
			}
			next[m.Sender]++
		}
	}
	if total != writers*perWriter {
		t.Fatalf("expected %d messages total, got %d", writers*perWriter, total)
	}
}

func TestInMemoryLedger_HistoryReturnsCopy(t *testing.T) {
	l := NewInMemoryLedger()
	ctx := context.Background()
	_ = l.Store(ctx, "t1", "user", "original")

	h1, _ := l.History(ctx, "t1")
	h1[0].Content = "mutated"

	h2, _ := l.History(ctx, "t1")
	if h2[0].Content != "original" {
		t.Fatalf("expected copy isolation, got %q", h2[0].Content)
	}
}
