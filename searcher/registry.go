package searcher

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"connect4/game"
)

// DefaultEvaluation is the identifier of game.Score, the model's own score.
const DefaultEvaluation = "score"

var (
	ErrUnknownEvaluation = errors.New("unknown evaluation function")
	ErrNilEvaluation     = errors.New("nil evaluation function")
)

// Registry maps evaluation identifiers to functions. It is filled at startup and
// safe for concurrent lookups afterwards.
type Registry struct {
	sync.RWMutex
	evaluations map[string]game.Evaluate
}

// NewRegistry returns a registry holding DefaultEvaluation.
func NewRegistry() *Registry {
	return &Registry{
		evaluations: map[string]game.Evaluate{
			DefaultEvaluation: game.Score,
		},
	}
}

func (r *Registry) Register(name string, evaluate game.Evaluate) error {
	if name == "" {
		return errors.New("evaluation name cannot be empty")
	}
	if evaluate == nil {
		return fmt.Errorf("%w: %q", ErrNilEvaluation, name)
	}

	r.Lock()
	defer r.Unlock()

	if _, ok := r.evaluations[name]; ok {
		return fmt.Errorf("evaluation %q is already registered", name)
	}
	r.evaluations[name] = evaluate
	return nil
}

// Resolve never falls back to a default: an unknown name is a configuration error.
func (r *Registry) Resolve(name string) (game.Evaluate, error) {
	r.RLock()
	defer r.RUnlock()

	evaluate, ok := r.evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
	return evaluate, nil
}

func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.evaluations))
	for name := range r.evaluations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
