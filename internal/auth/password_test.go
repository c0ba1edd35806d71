package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("StrongPass123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "StrongPass123", hash)

	assert.True(t, CheckPassword("StrongPass123", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("StrongPass123")
	require.NoError(t, err)
	second, err := HashPassword("StrongPass123")
	require.NoError(t, err)

	// random salt means two hashes of the same input differ
	assert.NotEqual(t, first, second)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
