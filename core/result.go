package core

// NoSuitableAgentMessage is the fixed text returned when no agent can be
// resolved for a message (empty registry, unknown override, classifier none
// with no default). Routing failure is a normal, recoverable outcome, so the
// sentinel is delivered with a nil error and Outcome set to OutcomeNoAgent.
const NoSuitableAgentMessage = "no suitable agent"

// Outcome classifies how an orchestration finished, so callers branch on a
// typed value instead of string-matching sentinels.
type Outcome int

const (
	// OutcomeCompleted means the resolved agent produced the final text.
	OutcomeCompleted Outcome = iota
	// OutcomeNoAgent means no agent could be resolved; Text carries the
	// no-suitable-agent sentinel.
	OutcomeNoAgent
	// OutcomeBudgetExhausted means the reasoning loop ran out of step budget
	// before a positive completion check; Text carries the last observation.
	OutcomeBudgetExhausted
)

// String returns the symbolic name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeNoAgent:
		return "no_agent"
	case OutcomeBudgetExhausted:
		return "budget_exhausted"
	default:
		return "unknown"
	}
}

// Result is the normalized return value of every orchestration strategy.
type Result struct {
	// Text is the final aggregated response.
	Text string `json:"text"`
	// AgentName is the resolved agent, empty when Outcome is OutcomeNoAgent.
	AgentName string `json:"agent_name,omitempty"`
	// Chunks holds the chunks already delivered to a stream sink, in order.
	// Nil for non-streamed calls. Concatenating Chunks yields Text.
	Chunks []string `json:"chunks,omitempty"`
	// Outcome reports how the orchestration finished.
	Outcome Outcome `json:"outcome"`
}

// NoAgentResult returns the canonical routing-failure result.
func NoAgentResult() Result {
	return Result{Text: NoSuitableAgentMessage, Outcome: OutcomeNoAgent}
}
