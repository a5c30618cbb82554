package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TokenRepository stores revoked access-token ids until they would have
// expired anyway; the scheduler purges the rest.
type TokenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTokenRepo(db *dbpg.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	query := `INSERT INTO revoked_tokens (jti, expires_at, revoked_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (jti) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, jti, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (r *TokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, jti)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}

	var revoked bool
	if err = row.Scan(&revoked); err != nil {
		return false, fmt.Errorf("scan revoked token: %w", err)
	}

	return revoked, nil
}

func (r *TokenRepository) PurgeExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at < now()`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("purge expired tokens: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge rows affected: %w", err)
	}

	return rows, nil
}
