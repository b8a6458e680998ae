package passport

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// SessionCodec converts between a full user and the minimal durable
// reference stored in a session, and back. The reference is the internal id
// only; it never embeds the password hash or provider tokens.
type SessionCodec struct {
	store  Users
	logger Logger
}

// NewSessionCodec will create a codec backed by the given store.
func NewSessionCodec(store Users) *SessionCodec {
	return &SessionCodec{
		store:  store,
		logger: defLogger{},
	}
}

func (c *SessionCodec) WithLogger(logger Logger) *SessionCodec {
	c.logger = logger
	return c
}

// Reduce returns the session reference for a user. Invoked once per
// successful login, before the reference is persisted.
func (c *SessionCodec) Reduce(user *User) string {
	return user.ID.String()
}

// Expand looks the identity back up from a session reference. A reference
// with no backing identity is an error, never a rejection: the request
// pipeline must treat the session as invalid rather than anonymous.
func (c *SessionCodec) Expand(ctx context.Context, ref string) Outcome {
	id, err := uuid.Parse(ref)
	if err != nil {
		return Errored(errors.Wrap(ErrSessionIdentityMissing, errors.CategoryAuth, "malformed session reference"))
	}

	user, err := c.store.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return Errored(errors.Wrap(ErrSessionIdentityMissing, errors.CategoryAuth, "session reference has no backing identity").
				WithMetadata(map[string]any{"id": ref}))
		}
		c.logger.Error("session expand lookup failed: %v", err)
		return Errored(errors.Wrap(err, errors.CategoryInternal, "failed to restore identity from session"))
	}

	return Success(user)
}

// NewSessionID returns an opaque session id for keying the session store.
func NewSessionID() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(buf)
}

// MemorySessionStore is an in-process SessionStore for tests and
// single-process setups.
type MemorySessionStore struct {
	mu   sync.RWMutex
	refs map[string]string
}

var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{refs: make(map[string]string)}
}

func (m *MemorySessionStore) Get(ctx context.Context, sid string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ref, ok := m.refs[sid]
	if !ok {
		return "", errors.New("session not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound)
	}
	return ref, nil
}

func (m *MemorySessionStore) Put(ctx context.Context, sid, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs[sid] = ref
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.refs, sid)
	return nil
}
