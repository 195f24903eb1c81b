// Package orchestrator implements the routing and coordination core. Three
// interchangeable strategies expose the same Orchestrate contract:
//
//   - Simple: direct/default selection without a classifier
//   - Routed: single-shot classifier-routed selection with streaming support
//   - ReAct: bounded iterative Thought/Action/Observation reasoning
//
// All strategies share the same degradation policy: routing failure returns
// the no-suitable-agent sentinel (never an error), ledger writes are
// best-effort and never propagate, and only total worker-backend failure
// outside the reasoning loop is reported upward.
package orchestrator
