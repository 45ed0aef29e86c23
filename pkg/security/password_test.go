package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := New()

	encoded, err := h.Generate("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", encoded)

	ok, err := h.Verify("hunter22", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, ok)
}

func TestPasswordVerifyGarbageHash(t *testing.T) {
	h := New()

	ok, err := h.Verify("hunter22", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewOpaqueToken(t *testing.T) {
	tok, err := NewOpaqueToken(VerificationTokenTTL)
	require.NoError(t, err)

	assert.Len(t, tok.Token, tokenSize)
	assert.WithinDuration(t, time.Now().Add(VerificationTokenTTL), tok.ExpiresAt, time.Minute)

	other, err := NewOpaqueToken(VerificationTokenTTL)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token, other.Token)
}
