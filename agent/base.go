package agent

import "fmt"

// BaseAgent bundles the identity helpers shared by concrete workers. Embed
// it and supply Invoke / InvokeStream to satisfy core.Agent.
type BaseAgent struct {
	name        string
	description string
}

// NewBaseAgent constructs a BaseAgent with a generated description
// (customizable via SetDescription).
func NewBaseAgent(name string) BaseAgent {
	return BaseAgent{
		name:        name,
		description: fmt.Sprintf("Agent %s", name),
	}
}

// Name returns the agent's registry name.
func (b *BaseAgent) Name() string { return b.name }

// Description returns the agent's capability description used for
// classification and task generation.
func (b *BaseAgent) Description() string { return b.description }

// SetDescription updates the agent's description.
func (b *BaseAgent) SetDescription(desc string) { b.description = desc }
