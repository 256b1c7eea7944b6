package handlers

import (
	"fmt"
	"testing"
	"time"

	"fluxcrm/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)
	assert.True(t, CheckPassword("s3cret-password", hashed))
	assert.False(t, CheckPassword("wrong-password", hashed))
}

func TestCreateTokenRoundTrip(t *testing.T) {
	config.JwtKey = []byte("test-signing-key")

	tokenStr, err := CreateToken("user-42")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.JwtKey, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-42", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	remaining := time.Until(exp.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, time.Duration(config.JWTExpirationHours)*time.Hour)
}

func TestCreateTokenRejectsWrongKey(t *testing.T) {
	config.JwtKey = []byte("test-signing-key")
	tokenStr, err := CreateToken("user-42")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-key"), nil
	})
	assert.Error(t, err)
}
