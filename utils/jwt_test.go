package utils

import (
	"testing"
	"time"

	"doctorsportal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	email, err := ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("alice@example.com", -time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsTamperedSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken("alice@example.com", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
