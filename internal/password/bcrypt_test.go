package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, h.Verify("s3cret-password", hash))
	assert.False(t, h.Verify("wrong-password", hash))
}

func TestBcrypt_SaltedPerCall(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	require.NoError(t, err)
	second, err := h.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-input", first))
	assert.True(t, h.Verify("same-input", second))
}

func TestBcrypt_MalformedHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	h := NewBcrypt(1000)

	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.Verify("pw", hash))
}
