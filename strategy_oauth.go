package passport

import (
	"context"

	"github.com/goliatone/go-errors"
)

// OAuthStrategy resolves a verified federated Profile to an internal user,
// provisioning one on the first login for an unseen provider id. The
// provider id is the sole source of truth for matching; display-name or
// email drift on the provider side is not reconciled.
type OAuthStrategy struct {
	store    Users
	provider string
	logger   Logger
}

type OAuthOption func(*OAuthStrategy)

func WithOAuthLogger(logger Logger) OAuthOption {
	return func(s *OAuthStrategy) {
		s.logger = logger
	}
}

// NewOAuthStrategy will create a federated identity resolver for the named
// provider (e.g. "google").
func NewOAuthStrategy(provider string, store Users, opts ...OAuthOption) *OAuthStrategy {
	s := &OAuthStrategy{
		store:    store,
		provider: provider,
		logger:   defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Provider returns the provider name this strategy resolves for.
func (s *OAuthStrategy) Provider() string {
	return s.provider
}

// Authenticate implements Strategy. The attempt must be a Profile already
// verified by the provider; no token exchange happens here.
//
// Two concurrent first-time resolutions for the same provider id will both
// miss the lookup and both attempt creation; the store's unique constraint
// on (provider, provider_user_id) rejects the loser, which surfaces as an
// Errored outcome.
func (s *OAuthStrategy) Authenticate(ctx context.Context, attempt Attempt) Outcome {
	profile, ok := attempt.(Profile)
	if !ok {
		return Errored(errors.Wrap(ErrBadPayload, errors.CategoryBadInput, "oauth strategy requires a Profile"))
	}

	provider := profile.Provider
	if provider == "" {
		provider = s.provider
	}

	user, err := s.store.GetByExternalID(ctx, provider, profile.ProviderUserID)
	if err == nil {
		return Success(user)
	}

	if !errors.IsNotFound(err) {
		s.logger.Error("oauth strategy %s lookup failed: %v", provider, err)
		return Errored(errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by provider id"))
	}

	if len(profile.Emails) == 0 {
		return Errored(errors.Wrap(ErrProfileWithoutEmail, errors.CategoryBadInput, "cannot provision user").
			WithMetadata(map[string]any{
				"provider":         provider,
				"provider_user_id": profile.ProviderUserID,
			}))
	}

	record := &User{
		Username:       profile.DisplayName,
		Provider:       provider,
		ProviderUserID: profile.ProviderUserID,
		ProviderEmail:  profile.Emails[0],
	}

	created, err := s.store.Create(ctx, record)
	if err != nil {
		s.logger.Error("oauth strategy %s provisioning failed: %v", provider, err)
		return Errored(errors.Wrap(err, errors.CategoryInternal, "failed to provision user from federated profile"))
	}

	s.logger.Info("provisioned user %s from %s profile %s",
		created.ID.String(), provider, profile.ProviderUserID)

	return Success(created)
}
