package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/convoy-ai/convoy/core"
)

type stubAgent struct {
	name        string
	description string
}

func (a *stubAgent) Name() string        { return a.name }
func (a *stubAgent) Description() string { return a.description }

func (a *stubAgent) Invoke(context.Context, string, string) (string, error) { return "", nil }

func (a *stubAgent) InvokeStream(context.Context, string, string) (<-chan string, <-chan error) {
	ch := make(chan string)
	errs := make(chan error)
	close(ch)
	close(errs)
	return ch, errs
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()
	a := &stubAgent{name: "billing", description: "handles billing"}
	if err := r.Register(a); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	got, ok := r.Get("billing")
	if !ok || got != core.Agent(a) {
		t.Fatalf("expected registered agent back, ok=%v", ok)
	}
	if _, ok := r.Get("unknown"); ok {
		t.Fatalf("expected lookup miss for unknown name")
	}
}

func TestRegistry_RejectsInvalidRegistrations(t *testing.T) {
	r := New()
	if err := r.Register(nil); err == nil {
		t.Fatalf("expected error registering nil agent")
	}
	if err := r.Register(&stubAgent{name: ""}); err == nil {
		t.Fatalf("expected error registering empty name")
	}
	if err := r.Register(&stubAgent{name: "dup"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := r.Register(&stubAgent{name: "dup"}); err == nil {
		t.Fatalf("expected error registering duplicate name")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 agent, got %d", r.Len())
	}
}

func TestRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	r := New()
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		if err := r.Register(&stubAgent{name: n, description: "d-" + n}); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	descriptors := r.List()
	if len(descriptors) != len(names) {
		t.Fatalf("expected %d descriptors, got %d", len(names), len(descriptors))
	}
	for i, d := range descriptors {
		if d.Name != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], d.Name)
		}
		if d.Description != "d-"+names[i] {
			t.Fatalf("position %d: unexpected description %q", i, d.Description)
		}
	}
	got := r.Names()
	for i, n := range names {
		if got[i] != n {
			t.Fatalf("Names position %d: expected %s, got %s", i, n, got[i])
		}
	}
}

func TestRegistry_First(t *testing.T) {
	r := New()
	if _, ok := r.First(); ok {
		t.Fatalf("expected no first agent on empty registry")
	}
	_ = r.Register(&stubAgent{name: "one"})
	_ = r.Register(&stubAgent{name: "two"})
	a, ok := r.First()
	if !ok || a.Name() != "one" {
		t.Fatalf("expected first registered agent, got %v ok=%v", a, ok)
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := New()
	for _, n := range []string{"a", "b", "c"} {
		_ = r.Register(&stubAgent{name: n})
	}
	wg := sync.WaitGroup{}
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := r.Get("b"); !ok {
				t.Errorf("lookup miss under concurrency")
			}
			if len(r.List()) != 3 {
				t.Errorf("unexpected list length under concurrency")
			}
			_ = r.Names()
			_ = r.Len()
		}()
	}
	wg.Wait()
}
