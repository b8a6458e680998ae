package passport

import (
	"context"
)

// Built-in strategy names.
const (
	StrategyLocal  = "local"
	StrategyGoogle = "google"
)

// Authenticator is the process-wide entry point: it wires strategies into
// the registry at construction and exposes login and session restoration to
// the request pipeline. Construction is explicit and takes configuration as
// a parameter; there is no process-global instance.
type Authenticator struct {
	registry *Registry
	codec    *SessionCodec
	logger   Logger
}

// NewAuthenticator wires the local strategy (credential field taken from
// configuration, default "email") and, when provider credentials are
// configured, the google strategy. Additional strategies can be added with
// Use before the authenticator is shared.
func NewAuthenticator(store Users, cfg Config) *Authenticator {
	logger := defLogger{}

	registry := NewRegistry().WithLogger(logger)
	registry.Register(StrategyLocal, NewLocalStrategy(store,
		WithUsernameField(cfg.GetUsernameField()),
	))

	if cfg.GetGoogleClientID() != "" && cfg.GetGoogleClientSecret() != "" {
		registry.Register(StrategyGoogle, NewOAuthStrategy(StrategyGoogle, store))
	}

	return &Authenticator{
		registry: registry,
		codec:    NewSessionCodec(store),
		logger:   logger,
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	a.logger = logger
	a.registry.WithLogger(logger)
	a.codec.WithLogger(logger)
	return a
}

// Use registers an additional strategy under the given name. Must be called
// during startup wiring, before the authenticator serves requests.
func (a *Authenticator) Use(name string, strategy Strategy) *Authenticator {
	a.registry.Register(name, strategy)
	return a
}

// Strategies returns the names of the registered strategies.
func (a *Authenticator) Strategies() []string {
	return a.registry.Names()
}

// Login dispatches the attempt to the named strategy. Faults are never
// retried; a failed attempt requires a new caller-initiated one.
func (a *Authenticator) Login(ctx context.Context, strategy string, attempt Attempt) Outcome {
	outcome := a.registry.Dispatch(ctx, strategy, attempt)

	switch outcome.Kind() {
	case OutcomeSuccess:
		a.logger.Info("login via %s succeeded for user %s", strategy, outcome.User().ID.String())
	case OutcomeRejected:
		a.logger.Info("login via %s rejected: %s", strategy, outcome.Reason())
	case OutcomeErrored:
		a.logger.Error("login via %s errored: %v", strategy, outcome.Err())
	}

	return outcome
}

// SessionReference reduces a user to the durable reference the transport
// should persist in the session after a successful login.
func (a *Authenticator) SessionReference(user *User) string {
	return a.codec.Reduce(user)
}

// RestoreSession expands a session reference back into a full user on each
// subsequent request.
func (a *Authenticator) RestoreSession(ctx context.Context, ref string) Outcome {
	return a.codec.Expand(ctx, ref)
}
