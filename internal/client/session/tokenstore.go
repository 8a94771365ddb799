package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/applyline/applyline/internal/client/repositories/settings"
	"github.com/applyline/applyline/internal/dbx"
)

const (
	// tokenKey is the fixed storage key for the credential token. Absence of
	// the key means anonymous.
	tokenKey = "authToken"

	savedAtKey = "tokenSavedAt"
)

// TokenStore owns the persisted credential token. The session manager is the
// only writer; everything else (notably the request gateway) sees it through
// the read-only api.TokenSource interface.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Token returns the stored token, or "" when none is stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	return settings.NewSQLiteRepository(s.db).Get(ctx, tokenKey)
}

// Save persists the token together with the time it was issued, in a single
// transaction.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, savedAtKey, time.Now().UTC().Format(time.RFC3339))
	})
}

// Clear removes the token and its metadata.
func (s *TokenStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, savedAtKey)
	})
}
