package classifier

import (
	"context"
	"strings"

	"github.com/convoy-ai/convoy/core"
)

// KeywordClassifier routes by case-insensitive substring rules: the first
// rule whose keyword occurs in the message wins. Deterministic and cheap, it
// suits demos and tests where model-backed classification is overkill.
type KeywordClassifier struct {
	rules        []KeywordRule
	defaultAgent string
}

// KeywordRule maps a keyword to an agent name.
type KeywordRule struct {
	Keyword string
	Agent   string
}

// NewKeywordClassifier creates a keyword classifier. defaultAgent may be
// empty, in which case unmatched messages classify to none.
func NewKeywordClassifier(rules []KeywordRule, defaultAgent string) *KeywordClassifier {
	return &KeywordClassifier{rules: rules, defaultAgent: defaultAgent}
}

// Classify implements core.Classifier. Only rules that name a current
// candidate are considered.
func (c *KeywordClassifier) Classify(ctx context.Context, message, threadID string, candidates []core.Descriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	registered := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		registered[cand.Name] = true
	}

	lower := strings.ToLower(message)
	for _, rule := range c.rules {
		if registered[rule.Agent] && strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			return rule.Agent, nil
		}
	}

	if registered[c.defaultAgent] {
		return c.defaultAgent, nil
	}

	return "", nil
}
