// Package classifier contains core.Classifier implementations: a model-backed
// classifier for production routing and a deterministic keyword classifier
// for tests and demos.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/model"
)

const llmClassifierSystemPrompt = `You are a classifier. Given a user message and a list of
available agents, reply with the single name of the agent best suited to
handle the message. Reply with the agent name only, nothing else. If no agent
fits, reply with the word "none".`

// LLMClassifierOptions configures an LLMClassifier.
type LLMClassifierOptions struct {
	// DefaultAgent is returned when the model's answer does not name a
	// candidate. Leave empty to report none instead.
	DefaultAgent string
}

// LLMClassifier asks a language model to pick the best-fit agent for a
// message. The model's answer is validated against the candidate set; an
// unverifiable answer degrades to the configured default or to none, never
// to an invented name.
type LLMClassifier struct {
	llm          model.Model
	defaultAgent string
}

// NewLLMClassifier creates a model-backed classifier.
func NewLLMClassifier(llm model.Model, optFns ...func(o *LLMClassifierOptions)) *LLMClassifier {
	opts := LLMClassifierOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LLMClassifier{llm: llm, defaultAgent: opts.DefaultAgent}
}

// Classify implements core.Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, message, threadID string, candidates []core.Descriptor) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}

	answer, err := model.Complete(ctx, c.llm, llmClassifierSystemPrompt, c.buildPrompt(message, candidates))
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}

	name := normalizeAnswer(answer)
	for _, cand := range candidates {
		if strings.EqualFold(name, cand.Name) {
			return cand.Name, nil
		}
	}

	return c.defaultAgent, nil
}

func (c *LLMClassifier) buildPrompt(message string, candidates []core.Descriptor) string {
	var sb strings.Builder
	sb.WriteString("Available agents:\n")
	for _, cand := range candidates {
		fmt.Fprintf(&sb, "- %s: %s\n", cand.Name, cand.Description)
	}
	fmt.Fprintf(&sb, "\nUser message: %s\n", message)
	return sb.String()
}

// normalizeAnswer strips whitespace, quotes and trailing punctuation from a
// model answer, keeping only the first line.
func normalizeAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	if i := strings.IndexByte(answer, '\n'); i >= 0 {
		answer = answer[:i]
	}
	answer = strings.Trim(answer, "\"'` .")
	if strings.EqualFold(answer, "none") {
		return ""
	}
	return answer
}
