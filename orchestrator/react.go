package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/registry"
)

// observationPrefix is the internal label attached to raw agent responses
// while they circulate through the loop. It is stripped before any text
// leaves the orchestrator.
const observationPrefix = "Observation: "

const (
	thoughtSystemPrompt = `You are the reasoning engine of a multi-agent system. Given the
user's query and the latest observation, state in one or two sentences what
must be determined or done next. Do not answer the query yourself.`

	taskSystemPrompt = `You write task descriptions for worker agents. Given a thought and
the chosen agent's description, describe WHAT the agent must accomplish.
State only the goal, never how to achieve it. Reply with the task
description only.`

	decisionSystemPrompt = `You judge whether an observation fully answers a query. Reply with
exactly "yes" or "no".`
)

// ReActOptions configures the reasoning-loop orchestrator.
type ReActOptions struct {
	Options

	// MaxSteps is the reasoning budget; the loop performs at most
	// MaxSteps+1 Thought/Action/Observation cycles. Minimum 1, default 5.
	MaxSteps int
	// Observer receives structured step events.
	Observer Observer
	// Verbose installs a logging observer when no Observer is supplied.
	Verbose bool
}

// ReAct drives bounded iterative reasoning: THINKING -> ACTING -> OBSERVING,
// looping until a positive completion decision or budget exhaustion.
//
// Degradation policy inside the loop: agent failures, generation failures
// and per-call timeouts become the step's observation and consume budget;
// they are never fatal. When the budget runs out without a positive
// completion decision the last observation is returned as the final answer
// with OutcomeBudgetExhausted, not an error.
type ReAct struct {
	base
	classifier   core.Classifier
	generator    Generator
	defaultAgent string
	maxSteps     int
	observer     Observer
}

// Compile-time interface check.
var _ Orchestrator = (*ReAct)(nil)

// NewReAct constructs the reasoning-loop orchestrator.
func NewReAct(reg *registry.Registry, classifier core.Classifier, generator Generator, optFns ...func(o *ReActOptions)) *ReAct {
	opts := ReActOptions{MaxSteps: 5}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = 1
	}

	b := newBase(reg, opts.Options)

	observer := opts.Observer
	if observer == nil {
		if opts.Verbose {
			observer = NewLogObserver(b.logger)
		} else {
			observer = NopObserver{}
		}
	}

	return &ReAct{
		base:         b,
		classifier:   classifier,
		generator:    generator,
		defaultAgent: opts.DefaultAgentName,
		maxSteps:     opts.MaxSteps,
		observer:     observer,
	}
}

// Orchestrate implements Orchestrator.
//
// An explicit agent override bypasses the loop entirely: the message is
// dispatched to the named agent exactly as the routed strategy would.
func (r *ReAct) Orchestrate(ctx context.Context, threadID, message string, optFns ...func(o *CallOptions)) (core.Result, error) {
	opts := applyCallOptions(optFns)

	if opts.AgentName != "" {
		return r.orchestrateOverride(ctx, threadID, message, opts)
	}

	if r.registry.Len() == 0 {
		r.logger.Info("no agent resolvable", "thread_id", threadID)
		return core.NoAgentResult(), nil
	}

	r.record(ctx, threadID, core.SenderUser, message)

	result := r.runLoop(ctx, threadID, message)

	r.observer.OnStep(StepEvent{StepIndex: -1, Actor: "final", Payload: result.Text})
	r.record(ctx, threadID, r.finalSender(result.AgentName), result.Text)

	if opts.Sink != nil {
		// The loop produces no incremental output; deliver the final answer
		// as a single chunk to keep path equivalence.
		opts.Sink(result.Text)
		result.Chunks = []string{result.Text}
	}

	return result, nil
}

// runLoop executes up to maxSteps+1 Thought/Action/Observation cycles and
// returns the final result. It never returns an error: every failure mode
// inside the loop degrades to an observation or an early final answer.
func (r *ReAct) runLoop(ctx context.Context, threadID, message string) core.Result {
	// The initial observation is seeded with the user's message; the
	// completion guard keeps it from terminating the loop on cycle zero.
	observation := message
	lastAgent := ""

	for step := 0; step <= r.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			break
		}

		thought, err := r.generate(ctx, thoughtSystemPrompt, r.thoughtPrompt(message, observation))
		if err != nil {
			observation = fmt.Sprintf("Error: thought generation failed: %v", err)
			r.observer.OnStep(StepEvent{StepIndex: step, Actor: "observation", Payload: observation})
			continue
		}
		r.observer.OnStep(StepEvent{StepIndex: step, Actor: "thought", Payload: thought})

		action, err := r.determineAction(ctx, threadID, thought)
		if err != nil {
			var mae *core.MalformedActionError
			if !errors.As(err, &mae) {
				// Classifier or task generation failed outright: a step
				// failure, captured as the observation, consuming budget.
				observation = fmt.Sprintf("Error: %v", err)
				r.observer.OnStep(StepEvent{StepIndex: step, Actor: "observation", Payload: observation})
				continue
			}
			// Malformed or unroutable action. Recoverable: default agent
			// first, else the thought becomes the final answer.
			r.logger.Warn("action malformed", "thread_id", threadID, "error", err.Error())
			if r.defaultAgent != "" {
				if _, ok := r.registry.Get(r.defaultAgent); ok {
					action = Action{AgentName: r.defaultAgent, Task: thought}
				}
			}
			if action.AgentName == "" {
				return core.Result{
					Text:      thought,
					AgentName: lastAgent,
					Outcome:   core.OutcomeCompleted,
				}
			}
		}
		r.observer.OnStep(StepEvent{StepIndex: step, Actor: "action", Payload: FormatAction(action)})

		observation = r.executeAction(ctx, threadID, action)
		r.observer.OnStep(StepEvent{StepIndex: step, Actor: "observation", Payload: observation})
		lastAgent = action.AgentName

		done := r.isComplete(ctx, message, observation)
		r.observer.OnStep(StepEvent{StepIndex: step, Actor: "decision", Payload: fmt.Sprintf("%t", done)})
		if done {
			return core.Result{
				Text:      stripObservation(observation),
				AgentName: action.AgentName,
				Outcome:   core.OutcomeCompleted,
			}
		}
	}

	// Budget exhausted: the last observation stands in for the answer.
	return core.Result{
		Text:      stripObservation(observation),
		AgentName: lastAgent,
		Outcome:   core.OutcomeBudgetExhausted,
	}
}

// determineAction runs the ACTING phase: the classifier picks the target
// agent from the thought and the full candidate set, a second generation
// call derives the task from the thought and the agent's description, and
// the composed two-line action text is validated at this decision boundary.
func (r *ReAct) determineAction(ctx context.Context, threadID, thought string) (Action, error) {
	callCtx, cancel := r.callCtx(ctx)
	name, err := r.classifier.Classify(callCtx, thought, threadID, r.registry.List())
	cancel()
	if err != nil {
		return Action{}, fmt.Errorf("classify thought: %w", err)
	}

	a, ok := r.registry.Get(name)
	if !ok {
		return Action{}, &core.MalformedActionError{Raw: name, Reason: "classifier returned no registered agent"}
	}

	task, err := r.generate(ctx, taskSystemPrompt, r.taskPrompt(thought, a.Name(), a.Description()))
	if err != nil {
		return Action{}, fmt.Errorf("derive task: %w", err)
	}

	// The wire form is one line per field; a multi-line generation is
	// flattened before validation.
	task = strings.Join(strings.Fields(task), " ")

	return ParseAction(FormatAction(Action{AgentName: a.Name(), Task: task}))
}

// executeAction dispatches the task and wraps the outcome as the new
// observation. Backend failure is a recoverable step failure here, unlike in
// the single-shot strategies.
func (r *ReAct) executeAction(ctx context.Context, threadID string, action Action) string {
	a, ok := r.registry.Get(action.AgentName)
	if !ok {
		return fmt.Sprintf("Error: agent %s is not registered", action.AgentName)
	}

	callCtx, cancel := r.callCtx(ctx)
	defer cancel()

	response, err := a.Invoke(callCtx, action.Task, threadID)
	if err != nil {
		if isCanceled(err) {
			return fmt.Sprintf("Error: agent %s timed out", action.AgentName)
		}
		return fmt.Sprintf("Error: %v", err)
	}

	return observationPrefix + response
}

// isComplete runs the termination decision. Guard: an observation textually
// identical to the original query can never terminate the loop, preventing
// spurious finalization on the seeded first cycle.
func (r *ReAct) isComplete(ctx context.Context, query, observation string) bool {
	if stripObservation(observation) == query {
		return false
	}

	answer, err := r.generate(ctx, decisionSystemPrompt, r.decisionPrompt(query, observation))
	if err != nil {
		r.logger.Warn("completion decision failed", "error", err.Error())
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "yes")
}

func (r *ReAct) generate(ctx context.Context, system, prompt string) (string, error) {
	callCtx, cancel := r.callCtx(ctx)
	defer cancel()
	text, err := r.generator.Generate(callCtx, system, prompt)
	return strings.TrimSpace(text), err
}

func (r *ReAct) thoughtPrompt(query, observation string) string {
	return fmt.Sprintf("Query: %s\nLatest observation: %s\nThought:", query, observation)
}

func (r *ReAct) taskPrompt(thought, agentName, agentDescription string) string {
	return fmt.Sprintf("Thought: %s\nChosen agent: %s - %s\nTask:", thought, agentName, agentDescription)
}

func (r *ReAct) decisionPrompt(query, observation string) string {
	return fmt.Sprintf("Query: %s\n%s\nDoes the observation fully answer the query?", query, observation)
}

// orchestrateOverride honors an explicit agent selection without entering
// the reasoning loop; the override always wins over classification.
func (r *ReAct) orchestrateOverride(ctx context.Context, threadID, message string, opts CallOptions) (core.Result, error) {
	a, ok := r.registry.Get(opts.AgentName)
	if !ok {
		r.logger.Info("no agent resolvable", "thread_id", threadID, "override", opts.AgentName)
		return core.NoAgentResult(), nil
	}

	r.record(ctx, threadID, core.SenderUser, message)

	result, err := r.dispatch(ctx, a, message, threadID, opts.Sink)
	if err != nil {
		return result, &core.OrchestrationError{Op: "react", Err: err}
	}

	r.record(ctx, threadID, a.Name(), result.Text)

	return result, nil
}

// finalSender picks the ledger sender for the loop's final answer: the last
// dispatched agent when one exists, otherwise a generic assistant tag.
func (r *ReAct) finalSender(agentName string) string {
	if agentName != "" {
		return agentName
	}
	return "assistant"
}

// stripObservation removes the internal observation label so callers never
// see loop-internal formatting.
func stripObservation(text string) string {
	for strings.HasPrefix(text, observationPrefix) {
		text = strings.TrimPrefix(text, observationPrefix)
	}
	return text
}
