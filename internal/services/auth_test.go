package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	mentorID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), mentorID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService(nil, "secret-a", time.Hour).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewAuthService(nil, "secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
