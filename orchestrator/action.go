package orchestrator

import (
	"fmt"
	"strings"

	"github.com/convoy-ai/convoy/core"
)

// Action is the validated decision produced by one reasoning cycle: which
// agent to dispatch and what it must accomplish. The task states what to do,
// never how.
type Action struct {
	AgentName string
	Task      string
}

// FormatAction renders the canonical two-line wire form of an action.
func FormatAction(a Action) string {
	return fmt.Sprintf("agent: %s\ntask: %s", a.AgentName, a.Task)
}

// ParseAction validates raw text against the strict two-line contract
//
//	agent: <name>
//	task: <description>
//
// and returns the structured Action. Any deviation yields a
// *core.MalformedActionError so callers can recover instead of crashing.
func ParseAction(raw string) (Action, error) {
	lines := splitNonEmptyLines(raw)
	if len(lines) != 2 {
		return Action{}, &core.MalformedActionError{Raw: raw, Reason: fmt.Sprintf("expected 2 lines, got %d", len(lines))}
	}

	name, ok := strings.CutPrefix(lines[0], "agent:")
	if !ok {
		return Action{}, &core.MalformedActionError{Raw: raw, Reason: "first line must start with \"agent:\""}
	}
	task, ok := strings.CutPrefix(lines[1], "task:")
	if !ok {
		return Action{}, &core.MalformedActionError{Raw: raw, Reason: "second line must start with \"task:\""}
	}

	action := Action{AgentName: strings.TrimSpace(name), Task: strings.TrimSpace(task)}
	if action.AgentName == "" {
		return Action{}, &core.MalformedActionError{Raw: raw, Reason: "empty agent name"}
	}
	if action.Task == "" {
		return Action{}, &core.MalformedActionError{Raw: raw, Reason: "empty task"}
	}

	return action, nil
}

func splitNonEmptyLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
