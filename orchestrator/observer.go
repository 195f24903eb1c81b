package orchestrator

import "github.com/convoy-ai/convoy/logging"

// StepEvent is one structured record of reasoning-loop progress. Tests and
// tracing consumers assert on event sequences instead of parsing log text.
type StepEvent struct {
	// StepIndex is the zero-based reasoning cycle, -1 for events outside a
	// cycle (e.g. the final answer).
	StepIndex int
	// Actor identifies the phase: "thought", "action", "observation",
	// "decision" or "final".
	Actor string
	// Payload carries the phase's text (thought text, formatted action,
	// observation, decision verdict, final answer).
	Payload string
}

// Observer receives step events from the reasoning loop. Implementations
// must be fast; OnStep is called synchronously between phases.
type Observer interface {
	OnStep(ev StepEvent)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ev StepEvent)

// OnStep implements Observer.
func (f ObserverFunc) OnStep(ev StepEvent) { f(ev) }

// NopObserver discards all step events.
type NopObserver struct{}

// OnStep implements Observer.
func (NopObserver) OnStep(StepEvent) {}

// LogObserver forwards step events to a structured logger. It backs the
// verbose/trace construction flag.
type LogObserver struct {
	logger logging.Logger
}

// NewLogObserver creates an Observer logging at info level.
func NewLogObserver(logger logging.Logger) *LogObserver {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &LogObserver{logger: logger}
}

// OnStep implements Observer.
func (o *LogObserver) OnStep(ev StepEvent) {
	o.logger.Info("reasoning step",
		"step_index", ev.StepIndex,
		"actor", ev.Actor,
		"payload", ev.Payload,
	)
}
