package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	access, err := tm.GenerateAccessToken("bob@rental.test", "Bob", "CUSTOMER")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "bob@rental.test", claims.Email)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	refresh, err := tm.GenerateRefreshToken("bob@rental.test")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Equal(t, "bob@rental.test", claims.Email)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute, -time.Minute)

	access, err := tm.GenerateAccessToken("bob@rental.test", "Bob", "CUSTOMER")
	require.NoError(t, err)

	_, err = tm.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, time.Hour)
	other := NewTokenManager("another-secret-another-secret-32", time.Hour, time.Hour)

	access, err := tm.GenerateAccessToken("bob@rental.test", "Bob", "CUSTOMER")
	require.NoError(t, err)

	_, err = other.ValidateToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
