package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// Minimum cost keeps the test fast.
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("password1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password1234", hash)

	assert.True(t, hasher.Verify("password1234", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
	assert.False(t, hasher.Verify("password1234", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_DistinctHashes(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("password1234")
	require.NoError(t, err)
	second, err := hasher.Hash("password1234")
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, first, second)
}
