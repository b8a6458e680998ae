package passport

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Attempt is a strategy-specific credential payload. The closed set of
// payloads the registry dispatches is Credentials (local) and Profile
// (federated). Attempts are ephemeral and never persisted.
type Attempt interface {
	isAttempt()
}

// Credentials is the payload for the local strategy.
type Credentials struct {
	Email    string
	Password string
}

func (Credentials) isAttempt() {}

// Profile is the payload for a federated strategy: the verified identity
// delivered by the provider after the transport completed the OAuth2
// code/token exchange.
type Profile struct {
	Provider       string
	ProviderUserID string
	DisplayName    string
	Emails         []string
	AccessToken    string
	RefreshToken   string
}

func (Profile) isAttempt() {}

// Strategy is the single capability every credential strategy implements:
// accept an attempt payload and produce an Outcome.
type Strategy interface {
	Authenticate(ctx context.Context, attempt Attempt) Outcome
}

// Users is the user store contract consumed by strategies and the session
// codec. All operations may fault; lookups report absence through a
// record-not-found error, never a nil user with nil error. ComparePassword
// keeps the hash comparison at the store boundary and returns
// ErrMismatchedHashAndPassword when the plaintext does not match.
type Users interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByExternalID(ctx context.Context, provider, providerUserID string) (*User, error)
	Create(ctx context.Context, record *User) (*User, error)
	ComparePassword(ctx context.Context, user *User, password string) error
}

// SessionStore persists session references keyed by an opaque session id.
// The transport layer owns the implementation; MemorySessionStore is
// provided for tests and single-process setups.
type SessionStore interface {
	Get(ctx context.Context, sid string) (string, error)
	Put(ctx context.Context, sid, ref string) error
	Delete(ctx context.Context, sid string) error
}

// LoginPayload carries submitted local credentials from the transport.
type LoginPayload interface {
	GetIdentifier() string
	GetPassword() string
}

// Config holds passport options
type Config interface {
	GetUsernameField() string
	GetGoogleClientID() string
	GetGoogleClientSecret() string
	GetGoogleCallbackURL() string
	GetSessionCookieName() string
	GetSessionDuration() int
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] PASSPORT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] PASSPORT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] PASSPORT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
