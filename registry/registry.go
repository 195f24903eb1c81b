// Package registry provides the read-mostly agent registry used by the
// orchestrators for lookup and enumeration. The registry is an explicit
// constructed dependency, never a process-wide singleton, to preserve
// testability and avoid hidden shared state.
package registry

import (
	"fmt"
	"sync"

	"github.com/convoy-ai/convoy/core"
)

// Registry maps agent names to agent handles while preserving registration
// order. Reads take a shared lock only, so concurrent lookups never block
// each other; registration is expected to happen during wiring, before
// orchestration traffic starts.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]core.Agent
	order  []string
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{agents: make(map[string]core.Agent)}
}

// Register adds an agent under its name. Registering a second agent with the
// same name is rejected so routing stays unambiguous.
func (r *Registry) Register(a core.Agent) error {
	if a == nil {
		return fmt.Errorf("cannot register nil agent")
	}
	name := a.Name()
	if name == "" {
		return fmt.Errorf("cannot register agent with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[name]; exists {
		return fmt.Errorf("agent %q already registered", name)
	}
	r.agents[name] = a
	r.order = append(r.order, name)

	return nil
}

// Get returns the agent registered under name, or false when unknown.
func (r *Registry) Get(name string) (core.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// List returns descriptors for all registered agents in stable registration
// order. The slice is a fresh copy safe for the caller to retain.
func (r *Registry) List() []core.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptors := make([]core.Descriptor, 0, len(r.order))
	for _, name := range r.order {
		a := r.agents[name]
		descriptors = append(descriptors, core.Descriptor{Name: a.Name(), Description: a.Description()})
	}
	return descriptors
}

// Names returns all registered agent names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// First returns the earliest registered agent, or false when the registry is
// empty. Used by the direct-selection strategy as its last resort.
func (r *Registry) First() (core.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return nil, false
	}
	return r.agents[r.order[0]], true
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
