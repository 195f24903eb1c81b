package orchestrator

import (
	"context"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/registry"
)

// Simple is the direct-selection strategy: no classifier involved.
// Resolution order: explicit override, configured default, first registered
// agent. When nothing resolves the call degrades to the no-suitable-agent
// sentinel with no ledger writes.
type Simple struct {
	base
	defaultAgent string
}

// Compile-time interface check.
var _ Orchestrator = (*Simple)(nil)

// NewSimple constructs the direct-selection orchestrator.
func NewSimple(reg *registry.Registry, optFns ...func(o *Options)) *Simple {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Simple{
		base:         newBase(reg, opts),
		defaultAgent: opts.DefaultAgentName,
	}
}

// Orchestrate implements Orchestrator.
func (s *Simple) Orchestrate(ctx context.Context, threadID, message string, optFns ...func(o *CallOptions)) (core.Result, error) {
	opts := applyCallOptions(optFns)

	a, ok := s.resolve(opts.AgentName)
	if !ok {
		s.logger.Info("no agent resolvable", "thread_id", threadID, "override", opts.AgentName)
		return core.NoAgentResult(), nil
	}

	s.record(ctx, threadID, core.SenderUser, message)

	result, err := s.dispatch(ctx, a, message, threadID, opts.Sink)
	if err != nil {
		// Aborted or failed responses are not persisted.
		return result, &core.OrchestrationError{Op: "simple", Err: err}
	}

	s.record(ctx, threadID, a.Name(), result.Text)

	return result, nil
}

func (s *Simple) resolve(override string) (core.Agent, bool) {
	if override != "" {
		return s.registry.Get(override)
	}
	if s.defaultAgent != "" {
		if a, ok := s.registry.Get(s.defaultAgent); ok {
			return a, true
		}
	}
	return s.registry.First()
}
