package core

import "context"

// Classifier selects the best-fit agent name for a message from a candidate
// set. An empty name with a nil error means "none": no candidate fits and the
// caller should fall back to its configured default (or degrade to the
// no-suitable-agent sentinel).
//
// The returned name, when non-empty, must be one of the candidates; callers
// validate it against the registry before dispatching.
type Classifier interface {
	Classify(ctx context.Context, message, threadID string, candidates []Descriptor) (string, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, message, threadID string, candidates []Descriptor) (string, error)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(ctx context.Context, message, threadID string, candidates []Descriptor) (string, error) {
	return f(ctx, message, threadID, candidates)
}
