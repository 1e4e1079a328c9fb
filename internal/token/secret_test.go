package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	t.Run("64 lowercase hex characters", func(t *testing.T) {
		secret, err := GenerateSecret()
		require.NoError(t, err)
		assert.Len(t, secret, 2*SecretBytes)
		assert.True(t, IsWellFormedSecret(secret))
	})

	t.Run("unique across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			secret, err := GenerateSecret()
			require.NoError(t, err)
			require.False(t, seen[secret], "secret generated twice")
			seen[secret] = true
		}
	})
}

func TestIsWellFormedSecret(t *testing.T) {
	valid := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	assert.True(t, IsWellFormedSecret(valid))
	assert.False(t, IsWellFormedSecret(valid[:63]))
	assert.False(t, IsWellFormedSecret(valid+"0"))
	assert.False(t, IsWellFormedSecret("0123456789ABCDEF0123456789abcdef0123456789abcdef0123456789abcdef"))
	assert.False(t, IsWellFormedSecret(""))
}
