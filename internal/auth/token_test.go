package auth_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/modgate/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("2b0b7a0e-7c55-4c43-9df6-1d1f3e0c9a11", "staff@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "2b0b7a0e-7c55-4c43-9df6-1d1f3e0c9a11", claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
}

func TestTokenRejectsOtherSecret(t *testing.T) {
	token, err := auth.NewTokenManager("one", time.Hour).Generate("u1", "")
	require.NoError(t, err)

	_, err = auth.NewTokenManager("two", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", -time.Minute)
	token, err := tm.Generate("u1", "")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestGenerateRequiresUserID(t *testing.T) {
	_, err := auth.NewTokenManager("s", time.Hour).Generate("", "")
	assert.Error(t, err)
}
