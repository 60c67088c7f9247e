package jwthelper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbmille/trivia-api/internal/pkg/jwthelper"
)

func TestGenerateAndParseToken(t *testing.T) {
	signingKey := []byte("test-signing-key")

	token, err := jwthelper.GenerateToken(signingKey, 42, "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken(signingKey, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test-agent", claims.UserAgent)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("key-one"), 42, "test-agent")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("key-two"), token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := jwthelper.ParseToken([]byte("key"), "not.a.token")
	assert.Error(t, err)
}
