package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           UserRole  `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	TelegramChatID *int64
}

// TokenClaims is the decoded access token the auth layer hands to callers.
type TokenClaims struct {
	ID        string // jti, used for revocation
	UserID    string
	Role      UserRole
	ExpiresAt time.Time
}

type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64 // seconds
}
