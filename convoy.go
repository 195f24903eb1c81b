// Package convoy provides a high-level façade over the registry, the
// orchestration strategies and the conversation ledger, enabling rapid
// construction of conversational multi-agent systems. Most applications
// interact with this package by:
//  1. Creating a Convoy via New() (optionally overriding the strategy,
//     classifier, ledger or logger)
//  2. Registering one or more agents (LLM-backed, function-backed, custom)
//  3. Orchestrating messages, blocking or streaming
//
// The façade delegates routing and dispatch to the orchestrator package while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// ledger implementation and a structured logger.
package convoy

import (
	"context"
	"time"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/logging"
	"github.com/convoy-ai/convoy/memory"
	"github.com/convoy-ai/convoy/orchestrator"
	"github.com/convoy-ai/convoy/registry"
)

// Options configures the Convoy instance.
type Options struct {
	// Classifier routes messages to agents. When nil the simple strategy is
	// used instead of the routed one.
	Classifier core.Classifier

	// DefaultAgentName is consulted when routing resolves nothing. Optional;
	// the simple strategy additionally falls back to the first registered
	// agent.
	DefaultAgentName string

	// Ledger records conversation history (defaults to the in-memory
	// implementation if not provided). Writes are best-effort.
	Ledger core.Ledger

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// CallTimeout bounds each collaborator call. Zero means no bound beyond
	// the caller's ctx.
	CallTimeout time.Duration
}

// Convoy is the high-level façade aggregating the registry, the selected
// orchestration strategy and the conversation ledger.
type Convoy struct {
	opts         Options
	registry     *registry.Registry
	orchestrator orchestrator.Orchestrator
}

// New creates a Convoy with optional overrides. Without a classifier the
// simple strategy handles every message; supplying one switches to
// classifier-routed selection.
func New(optFns ...func(o *Options)) *Convoy {
	opts := Options{
		Ledger: memory.NewInMemoryLedger(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	reg := registry.New()

	strategyOpts := func(o *orchestrator.Options) {
		o.DefaultAgentName = opts.DefaultAgentName
		o.Ledger = opts.Ledger
		o.Logger = opts.Logger
		o.CallTimeout = opts.CallTimeout
	}

	var orch orchestrator.Orchestrator
	if opts.Classifier != nil {
		orch = orchestrator.NewRouted(reg, opts.Classifier, strategyOpts)
	} else {
		orch = orchestrator.NewSimple(reg, strategyOpts)
	}

	return &Convoy{opts: opts, registry: reg, orchestrator: orch}
}

// RegisterAgent adds an agent to the underlying registry.
func (c *Convoy) RegisterAgent(a core.Agent) error { return c.registry.Register(a) }

// Registry exposes the underlying registry for direct inspection.
func (c *Convoy) Registry() *registry.Registry { return c.registry }

// Ledger exposes the configured conversation ledger.
func (c *Convoy) Ledger() core.Ledger { return c.opts.Ledger }

// Orchestrate routes one user message through the configured strategy and
// returns the attributed result. Per-call overrides (explicit agent,
// streaming sink) are applied via functional options.
func (c *Convoy) Orchestrate(ctx context.Context, threadID, message string, optFns ...func(o *orchestrator.CallOptions)) (core.Result, error) {
	return c.orchestrator.Orchestrate(ctx, threadID, message, optFns...)
}

// OrchestrateStream is a streaming helper forwarding every response chunk to
// sink as it is produced. The concatenated chunks equal the blocking result
// text for the same call.
func (c *Convoy) OrchestrateStream(ctx context.Context, threadID, message string, sink core.StreamSink, optFns ...func(o *orchestrator.CallOptions)) (core.Result, error) {
	optFns = append(optFns, orchestrator.WithSink(sink))
	return c.orchestrator.Orchestrate(ctx, threadID, message, optFns...)
}
