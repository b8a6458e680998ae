package passport

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the authenticated principal. A user logs in either through the
// local credentials columns (email, password_hash) or through the external
// provider columns (provider, provider_user_id, provider_email); at least
// one of the two groups must be populated for the corresponding strategy to
// succeed. The composite unique index on (provider, provider_user_id) is
// what makes concurrent first-time federated logins safe: the store rejects
// the duplicate insert and the second attempt surfaces as an error.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID       uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username string    `bun:"username,notnull" json:"username,omitempty"`

	Email        string `bun:"email,nullzero,unique" json:"email,omitempty"`
	PasswordHash string `bun:"password_hash,nullzero" json:"-"`

	Provider       string `bun:"provider,nullzero,unique:provider_identity" json:"provider,omitempty"`
	ProviderUserID string `bun:"provider_user_id,nullzero,unique:provider_identity" json:"provider_user_id,omitempty"`
	ProviderEmail  string `bun:"provider_email,nullzero" json:"provider_email,omitempty"`

	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// LocalCredentials is the local sub-record of a user.
type LocalCredentials struct {
	Email        string
	PasswordHash string
}

// ExternalAccount is the federated sub-record of a user.
type ExternalAccount struct {
	Provider       string
	ProviderUserID string
	Email          string
}

// Local returns the local credentials sub-record if populated.
func (u *User) Local() (LocalCredentials, bool) {
	if u == nil || u.Email == "" || u.PasswordHash == "" {
		return LocalCredentials{}, false
	}
	return LocalCredentials{Email: u.Email, PasswordHash: u.PasswordHash}, true
}

// External returns the provider sub-record if populated.
func (u *User) External() (ExternalAccount, bool) {
	if u == nil || u.Provider == "" || u.ProviderUserID == "" {
		return ExternalAccount{}, false
	}
	return ExternalAccount{
		Provider:       u.Provider,
		ProviderUserID: u.ProviderUserID,
		Email:          u.ProviderEmail,
	}, true
}
