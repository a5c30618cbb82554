package middleware

import (
	"net/http"
	"strings"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	callerKey = "caller"
	claimsKey = "token_claims"
)

// Auth validates the bearer token, rejects revoked ones, and loads the
// caller so every handler passes an explicit *domain.User down the stack.
// The role is read from the users table, not the token, so a role change
// takes effect without waiting for old tokens to expire.
func Auth(
	manager ports.TokenManager,
	tokens ports.TokenRepo,
	users ports.UserRepo,
	log logger.Logger,
) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			abortUnauthorized(c, domain.ErrUnauthenticated.Error())
			return
		}

		claims, err := manager.Parse(raw)
		if err != nil {
			abortUnauthorized(c, domain.ErrUnauthenticated.Error())
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error("failed to check token revocation",
				logger.String("error", err.Error()),
			)
			abortUnauthorized(c, domain.ErrUnauthenticated.Error())
			return
		}
		if revoked {
			abortUnauthorized(c, domain.ErrTokenRevoked.Error())
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, domain.ErrUnauthenticated.Error())
			return
		}

		c.Set(callerKey, user)
		c.Set(claimsKey, claims)

		c.Next()
	}
}

func abortUnauthorized(c *ginext.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": message})
}

func CallerFromContext(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func ClaimsFromContext(c *ginext.Context) (*domain.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*domain.TokenClaims)
	return claims, ok
}
