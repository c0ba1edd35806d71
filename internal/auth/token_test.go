package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := issuer.Issue("64f0c3e1a2b3c4d5e6f70809")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c3e1a2b3c4d5e6f70809", userID)
}

func TestTokenExpired(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Millisecond)
	require.NoError(t, err)

	token, _, err := issuer.Issue("64f0c3e1a2b3c4d5e6f70809")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not-a-token",
		"truncated": "eyJhbGciOiJIUzI1NiJ9.e30",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestTokenWrongSignature(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	other, err := NewTokenIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue("64f0c3e1a2b3c4d5e6f70809")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("   ", time.Hour)
	assert.ErrorIs(t, err, ErrSecretRequired)
}
