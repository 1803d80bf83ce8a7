package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecretRequiresEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())

	t.Setenv("JWT_SECRET", "test-secret")
	assert.NoError(t, InitJWTSecret())
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "someone@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ResolveUserID(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestResolveRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "someone@example.com")
	require.NoError(t, err)

	_, err = ResolveUserID(token + "x")
	assert.Error(t, err)

	_, err = ResolveUserID("not-a-token")
	assert.Error(t, err)
}

func TestResolveRejectsTokenFromOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(7, "someone@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	require.NoError(t, InitJWTSecret())

	_, err = ResolveUserID(token)
	assert.Error(t, err)
}
