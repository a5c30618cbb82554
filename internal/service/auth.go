package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users   ports.UserRepo
	tokens  ports.TokenRepo
	manager ports.TokenManager
	logger  logger.Logger
}

func NewAuthService(
	users ports.UserRepo,
	tokens ports.TokenRepo,
	manager ports.TokenManager,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		manager: manager,
		logger:  logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Role:           domain.RoleUser,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
	)

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return s.issue(user)
}

// Refresh rotates the caller's token: the presented one is revoked and a
// fresh one issued in its place.
func (s *AuthService) Refresh(ctx context.Context, caller *domain.User, claims *domain.TokenClaims) (*domain.AuthResult, error) {
	if err := s.tokens.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return nil, fmt.Errorf("revoke token: %w", err)
	}

	return s.issue(caller)
}

func (s *AuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if err := s.tokens.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.logger.Info("user logged out", logger.String("user_id", claims.UserID))

	return nil
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := s.manager.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}, nil
}
