package orchestrator

import (
	"context"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/registry"
)

// Routed is the single-shot classifier-routed strategy. Resolution order:
// explicit override, classifier decision, configured default; anything less
// degrades to the no-suitable-agent sentinel with no ledger writes.
//
// The classifier is invoked synchronously with the message, the thread id
// and the full candidate list; its answer must name a currently registered
// agent or be none. A classifier failure is a selection failure, not a
// fault: it is logged and resolution falls through to the default.
type Routed struct {
	base
	classifier   core.Classifier
	defaultAgent string
}

// Compile-time interface check.
var _ Orchestrator = (*Routed)(nil)

// NewRouted constructs the classifier-routed orchestrator.
func NewRouted(reg *registry.Registry, classifier core.Classifier, optFns ...func(o *Options)) *Routed {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Routed{
		base:         newBase(reg, opts),
		classifier:   classifier,
		defaultAgent: opts.DefaultAgentName,
	}
}

// Orchestrate implements Orchestrator.
func (r *Routed) Orchestrate(ctx context.Context, threadID, message string, optFns ...func(o *CallOptions)) (core.Result, error) {
	opts := applyCallOptions(optFns)

	a, ok := r.resolve(ctx, threadID, message, opts.AgentName)
	if !ok {
		r.logger.Info("no agent resolvable", "thread_id", threadID, "override", opts.AgentName)
		return core.NoAgentResult(), nil
	}

	r.logger.Debug("agent resolved", "thread_id", threadID, "agent", a.Name())
	r.record(ctx, threadID, core.SenderUser, message)

	result, err := r.dispatch(ctx, a, message, threadID, opts.Sink)
	if err != nil {
		// Aborted or failed responses are not persisted; backend failure
		// outside a reasoning loop always surfaces to the caller.
		return result, &core.OrchestrationError{Op: "routed", Err: err}
	}

	r.record(ctx, threadID, a.Name(), result.Text)

	return result, nil
}

func (r *Routed) resolve(ctx context.Context, threadID, message, override string) (core.Agent, bool) {
	if override != "" {
		return r.registry.Get(override)
	}

	if r.classifier != nil && r.registry.Len() > 0 {
		callCtx, cancel := r.callCtx(ctx)
		name, err := r.classifier.Classify(callCtx, message, threadID, r.registry.List())
		cancel()
		switch {
		case err != nil:
			r.logger.Warn("classification failed", "thread_id", threadID, "error", err.Error())
		case name != "":
			if a, ok := r.registry.Get(name); ok {
				return a, true
			}
			r.logger.Warn("classifier chose unregistered agent", "thread_id", threadID, "agent", name)
		}
	}

	if r.defaultAgent != "" {
		return r.registry.Get(r.defaultAgent)
	}

	return nil, false
}
