package service

import (
	"context"
	"testing"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepo, *mocks.MockTokenRepo, *mocks.MockTokenManager) {
	t.Helper()
	users := mocks.NewMockUserRepo(t)
	tokens := mocks.NewMockTokenRepo(t)
	manager := mocks.NewMockTokenManager(t)
	svc := NewAuthService(users, tokens, manager, newTestLogger(t))
	return svc, users, tokens, manager
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _, manager := newAuthService(t)

	chatID := int64(123456789)
	users.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, user *domain.User) {
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@corp.test", user.Email)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEmpty(t, user.ID)
		require.NotNil(t, user.TelegramChatID)
		assert.Equal(t, chatID, *user.TelegramChatID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	}).Return(nil)
	manager.EXPECT().Issue(mock.Anything).Return("token", time.Now().Add(time.Hour), nil)

	res, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:           "Alice",
		Email:          "alice@corp.test",
		Password:       "s3cret-pass",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
	assert.Equal(t, "alice@corp.test", res.User.Email)
	assert.Greater(t, res.ExpiresIn, int64(0))
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.RegisterInput
	}{
		{"missing name", domain.RegisterInput{Email: "a@b.test", Password: "s3cret-pass"}},
		{"missing email", domain.RegisterInput{Name: "Alice", Password: "s3cret-pass"}},
		{"short password", domain.RegisterInput{Name: "Alice", Email: "a@b.test", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newAuthService(t)

			_, err := svc.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, users, _, _ := newAuthService(t)

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@corp.test",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, users, _, manager := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@corp.test", PasswordHash: string(hash)}
	users.EXPECT().GetByEmail(mock.Anything, "alice@corp.test").Return(user, nil)
	manager.EXPECT().Issue(user).Return("token", time.Now().Add(time.Hour), nil)

	res, err := svc.Login(context.Background(), "alice@corp.test", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@corp.test", PasswordHash: string(hash)}
	users.EXPECT().GetByEmail(mock.Anything, "alice@corp.test").Return(user, nil)

	_, err = svc.Login(context.Background(), "alice@corp.test", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users, _, _ := newAuthService(t)

	users.EXPECT().GetByEmail(mock.Anything, "ghost@corp.test").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost@corp.test", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RevokesOldToken(t *testing.T) {
	svc, _, tokens, manager := newAuthService(t)

	user := &domain.User{ID: "u1"}
	expiresAt := time.Now().Add(time.Hour)
	claims := &domain.TokenClaims{ID: "jti-1", UserID: "u1", ExpiresAt: expiresAt}

	tokens.EXPECT().Revoke(mock.Anything, "jti-1", expiresAt).Return(nil)
	manager.EXPECT().Issue(user).Return("fresh-token", time.Now().Add(time.Hour), nil)

	res, err := svc.Refresh(context.Background(), user, claims)

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", res.AccessToken)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, tokens, _ := newAuthService(t)

	expiresAt := time.Now().Add(time.Hour)
	claims := &domain.TokenClaims{ID: "jti-1", UserID: "u1", ExpiresAt: expiresAt}

	tokens.EXPECT().Revoke(mock.Anything, "jti-1", expiresAt).Return(nil)

	err := svc.Logout(context.Background(), claims)

	require.NoError(t, err)
}
