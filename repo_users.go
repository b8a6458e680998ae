package passport

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UsersRepository is the bun-backed implementation of the Users contract.
// Absence is reported through go-repository-bun's record-not-found error so
// strategies can distinguish rejection from fault.
type UsersRepository interface {
	Users
	repository.Repository[*User]

	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	GetByExternalIDTx(ctx context.Context, tx bun.IDB, provider, providerUserID string) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ UsersRepository = (*users)(nil)
	_ Users           = (*users)(nil)
)

// NewUsersRepository will create a Users store backed by bun.
func NewUsersRepository(db *bun.DB) UsersRepository {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id.String()).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

func (a *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("LOWER(?TableAlias.email) = LOWER(?)", strings.TrimSpace(email)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"email": email})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) GetByExternalID(ctx context.Context, provider, providerUserID string) (*User, error) {
	return a.GetByExternalIDTx(ctx, a.db, provider, providerUserID)
}

func (a *users) GetByExternalIDTx(ctx context.Context, tx bun.IDB, provider, providerUserID string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.provider = ?", provider).
		Where("?TableAlias.provider_user_id = ?", providerUserID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"provider":         provider,
					"provider_user_id": providerUserID,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) Create(ctx context.Context, record *User) (*User, error) {
	return a.CreateTx(ctx, a.db, record)
}

func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	prepareUserDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

// ComparePassword validates the cleartext against the stored hash. The
// hashing scheme is a storage concern; callers only learn match or
// mismatch via ErrMismatchedHashAndPassword.
func (a *users) ComparePassword(ctx context.Context, user *User, password string) error {
	if user == nil {
		return ErrMismatchedHashAndPassword
	}
	return ComparePasswordAndHash(password, user.PasswordHash)
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if record.Username == "" {
		if record.Email != "" {
			record.Username = strings.Split(record.Email, "@")[0]
		} else if record.ProviderEmail != "" {
			record.Username = strings.Split(record.ProviderEmail, "@")[0]
		}
	}
}
