package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndParse(t *testing.T) {
	manager := NewManager("top-secret", time.Minute)

	signed, expiresAt, err := manager.Generate("user-1", "user@example.com", "ADMIN")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := manager.Parse(signed)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestManager_ParseExpired(t *testing.T) {
	manager := NewManager("secret", time.Hour)
	signed, _, err := manager.Generate("user-1", "user@example.com", "OPERATOR")
	require.NoError(t, err)

	manager.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = manager.Parse(signed)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_ParseWrongSecret(t *testing.T) {
	signed, _, err := NewManager("one", time.Hour).Generate("user-1", "user@example.com", "OPERATOR")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).Parse(signed)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ParseGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Parse("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckUnverified(t *testing.T) {
	signed, expiresAt, err := NewManager("secret", time.Hour).Generate("user-1", "user@example.com", "OPERATOR")
	require.NoError(t, err)

	claims, err := CheckUnverified(signed, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())

	_, err = CheckUnverified(signed, expiresAt.Add(time.Second))
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = CheckUnverified("garbage", time.Now())
	assert.ErrorIs(t, err, ErrInvalidToken)
}
