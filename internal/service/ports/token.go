package ports

import (
	"context"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
)

type TokenManager interface {
	Issue(user *domain.User) (string, time.Time, error)
	Parse(raw string) (*domain.TokenClaims, error)
}

type TokenRepo interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
