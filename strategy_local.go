package passport

import (
	"context"

	"github.com/goliatone/go-errors"
)

// DefaultUsernameField is the form field the local strategy reads the
// identifier from unless configured otherwise.
const DefaultUsernameField = "email"

// LocalStrategy verifies an email/password pair against the user store.
// Lookup and comparison run strictly in sequence; the hash comparison
// itself is the store's capability and opaque to this strategy.
type LocalStrategy struct {
	store  Users
	field  string
	logger Logger
}

type LocalOption func(*LocalStrategy)

// WithUsernameField overrides the credential field name, default "email".
func WithUsernameField(field string) LocalOption {
	return func(s *LocalStrategy) {
		if field != "" {
			s.field = field
		}
	}
}

func WithLocalLogger(logger Logger) LocalOption {
	return func(s *LocalStrategy) {
		s.logger = logger
	}
}

// NewLocalStrategy will create a local email/password strategy backed by
// the given store.
func NewLocalStrategy(store Users, opts ...LocalOption) *LocalStrategy {
	s := &LocalStrategy{
		store:  store,
		field:  DefaultUsernameField,
		logger: defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// UsernameField returns the configured credential field name.
func (s *LocalStrategy) UsernameField() string {
	return s.field
}

// Authenticate implements Strategy. Unknown users and wrong passwords are
// rejections; store or comparison faults propagate as errors so the
// orchestrator can route them to its error path.
func (s *LocalStrategy) Authenticate(ctx context.Context, attempt Attempt) Outcome {
	creds, ok := attempt.(Credentials)
	if !ok {
		return Errored(errors.Wrap(ErrBadPayload, errors.CategoryBadInput, "local strategy requires Credentials"))
	}

	user, err := s.store.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return Rejected(ReasonUserNotFound)
		}
		s.logger.Error("local strategy lookup failed: %v", err)
		return Errored(errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification"))
	}

	if err := s.store.ComparePassword(ctx, user, creds.Password); err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			return Rejected(ReasonPasswordMismatch)
		}
		s.logger.Error("local strategy comparison failed: %v", err)
		return Errored(errors.Wrap(err, errors.CategoryInternal, "failed to compare password during verification"))
	}

	return Success(user)
}
