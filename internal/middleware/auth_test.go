package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenStr, err := IssueToken(secret, "player-uuid", "Chris Meares", true)
	require.NoError(t, err)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "player-uuid", claims.Subject)
	assert.Equal(t, "Chris Meares", claims.Name)
	assert.True(t, claims.Admin)
}

func TestIssueTokenExpiresInAWeek(t *testing.T) {
	tokenStr, err := IssueToken("secret", "id", "name", false)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	expected := time.Now().Add(SessionDuration)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := IssueToken("right-secret", "id", "name", false)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
