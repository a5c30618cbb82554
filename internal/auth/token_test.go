package auth

import (
	"testing"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m, err := NewManager("test-secret", "travels-corp", time.Hour)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Role: domain.RoleAdmin}

	raw, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
	assert.Equal(t, domain.RoleAdmin, parsed.Role)
	assert.NotEmpty(t, parsed.ID)
}

func TestManager_UniqueJTI(t *testing.T) {
	m, err := NewManager("test-secret", "travels-corp", time.Hour)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Role: domain.RoleUser}

	first, _, err := m.Issue(user)
	require.NoError(t, err)
	second, _, err := m.Issue(user)
	require.NoError(t, err)

	c1, err := m.Parse(first)
	require.NoError(t, err)
	c2, err := m.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestManager_ParseRejectsBadToken(t *testing.T) {
	m, err := NewManager("test-secret", "travels-corp", time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	other, err := NewManager("other-secret", "travels-corp", time.Hour)
	require.NoError(t, err)

	raw, _, err := other.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", "travels-corp", time.Hour)
	assert.Error(t, err)
}
