package passport

import (
	"context"
	"sort"

	"github.com/goliatone/go-errors"
)

// Registry holds named strategies and dispatches attempts to the one
// selected per request. Registration happens once at startup; the map is
// treated as read-only afterwards, so no locking is required.
type Registry struct {
	strategies map[string]Strategy
	logger     Logger
}

// NewRegistry will create an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
		logger:     defLogger{},
	}
}

func (r *Registry) WithLogger(logger Logger) *Registry {
	r.logger = logger
	return r
}

// Register binds a strategy to a name. Names are unique; the last
// registration for a given name wins.
func (r *Registry) Register(name string, strategy Strategy) {
	if strategy == nil {
		return
	}
	r.strategies[name] = strategy
}

// Dispatch routes the attempt to the named strategy. An unknown name is a
// configuration fault and yields an Errored outcome, never a Rejected one.
func (r *Registry) Dispatch(ctx context.Context, name string, attempt Attempt) Outcome {
	strategy, ok := r.strategies[name]
	if !ok {
		r.logger.Error("dispatch to unregistered strategy: %s", name)
		return Errored(errors.Wrap(ErrUnknownStrategy, errors.CategoryBadInput, "no strategy registered under name").
			WithMetadata(map[string]any{"strategy": name}))
	}

	return strategy.Authenticate(ctx, attempt)
}

// Names returns the registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
