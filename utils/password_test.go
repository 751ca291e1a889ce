package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordDeterministic(t *testing.T) {
	first := HashPassword("secret123")
	second := HashPassword("secret123")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
	assert.NotEqual(t, "secret123", first)
}

func TestHashPasswordEmpty(t *testing.T) {
	assert.Equal(t, "", HashPassword(""))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("secret123")

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("Secret123", hash))
}

func TestVerifyPasswordFailsClosed(t *testing.T) {
	assert.False(t, VerifyPassword("", HashPassword("secret123")))
	assert.False(t, VerifyPassword("secret123", ""))
	assert.False(t, VerifyPassword("", ""))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := BcryptPassword("secret123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}
