package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/logging"
	"github.com/convoy-ai/convoy/registry"
)

// Orchestrator is the single operation contract shared by all strategies.
//
// Each call is one logical sequential flow: no internal fan-out across
// agents. Collaborator calls (classifier, generation, agent, ledger) are the
// natural suspension points and all honor ctx.
type Orchestrator interface {
	Orchestrate(ctx context.Context, threadID, message string, optFns ...func(o *CallOptions)) (core.Result, error)
}

// CallOptions are per-call overrides applied via functional options.
type CallOptions struct {
	// AgentName explicitly selects the worker, winning over any classifier
	// decision and any configured default.
	AgentName string
	// Sink, when non-nil, switches the call to streaming mode: every chunk
	// is forwarded to the sink as produced and accumulated into the result.
	Sink core.StreamSink
}

// WithAgent forces the named agent for this call.
func WithAgent(name string) func(o *CallOptions) {
	return func(o *CallOptions) { o.AgentName = name }
}

// WithSink enables streaming delivery for this call.
func WithSink(sink core.StreamSink) func(o *CallOptions) {
	return func(o *CallOptions) { o.Sink = sink }
}

func applyCallOptions(optFns []func(o *CallOptions)) CallOptions {
	opts := CallOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Options holds the construction-time configuration shared by the simple and
// routed strategies.
type Options struct {
	// DefaultAgentName is consulted when no explicit or classified agent
	// resolves. Optional.
	DefaultAgentName string
	// Ledger records conversation history. Optional; writes are best-effort.
	Ledger core.Ledger
	// Logger receives structured routing / degradation logs.
	Logger logging.Logger
	// CallTimeout individually bounds each collaborator call. Zero means no
	// bound beyond the caller's ctx.
	CallTimeout time.Duration
}

// base bundles the plumbing shared by all strategies: registry access,
// best-effort ledger writes, per-call timeouts and dispatching with the
// attribution prefix on both the streamed and blocking paths.
type base struct {
	registry    *registry.Registry
	ledger      core.Ledger
	logger      logging.Logger
	callTimeout time.Duration
}

func newBase(reg *registry.Registry, opts Options) base {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return base{
		registry:    reg,
		ledger:      opts.Ledger,
		logger:      logger,
		callTimeout: opts.CallTimeout,
	}
}

// record performs a best-effort ledger write. Storage failures are logged
// and swallowed: memory is a history aid, not a correctness dependency.
func (b *base) record(ctx context.Context, threadID, sender, content string) {
	if b.ledger == nil {
		return
	}
	if err := b.ledger.Store(ctx, threadID, sender, content); err != nil {
		b.logger.Warn("ledger write failed",
			"thread_id", threadID,
			"sender", sender,
			"error", err.Error(),
		)
	}
}

// callCtx derives a context bounding one collaborator call.
func (b *base) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.callTimeout)
}

// attribution returns the response prefix identifying the resolved agent.
// It is emitted identically on the streamed and non-streamed paths so that
// concatenated chunks always equal the blocking return value.
func attribution(agentName string) string { return "[" + agentName + "] " }

// dispatch invokes the agent, blocking or streaming depending on sink, and
// returns the aggregated result. On the streaming path a caller abort stops
// chunk forwarding immediately and surfaces the context error; the caller of
// dispatch must then skip the trailing ledger write.
func (b *base) dispatch(ctx context.Context, a core.Agent, task, threadID string, sink core.StreamSink) (core.Result, error) {
	prefix := attribution(a.Name())

	if sink == nil {
		callCtx, cancel := b.callCtx(ctx)
		defer cancel()

		text, err := a.Invoke(callCtx, task, threadID)
		if err != nil {
			return core.Result{}, err
		}
		return core.Result{
			Text:      prefix + text,
			AgentName: a.Name(),
			Outcome:   core.OutcomeCompleted,
		}, nil
	}

	callCtx, cancel := b.callCtx(ctx)
	defer cancel()

	chunkCh, errCh := a.InvokeStream(callCtx, task, threadID)

	result := core.Result{AgentName: a.Name(), Outcome: core.OutcomeCompleted}
	deliver := func(chunk string) {
		sink(chunk)
		result.Chunks = append(result.Chunks, chunk)
		result.Text += chunk
	}
	deliver(prefix)

	for {
		select {
		case <-ctx.Done():
			// Caller aborted mid-stream: stop forwarding, report the abort.
			return result, ctx.Err()
		case err, ok := <-errCh:
			if ok && err != nil {
				return result, err
			}
			errCh = nil
		case chunk, ok := <-chunkCh:
			if !ok {
				if errCh != nil {
					if err, open := <-errCh; open && err != nil {
						return result, err
					}
				}
				return result, nil
			}
			deliver(chunk)
		}
	}
}

// isCanceled reports whether err stems from context cancellation or timeout.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
