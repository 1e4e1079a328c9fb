package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandomBytes(t *testing.T) {
	t.Run("Generate correct length", func(t *testing.T) {
		bytes, err := CryptoRandomBytes(20)
		require.NoError(t, err)
		assert.Len(t, bytes, 20)
	})

	t.Run("Generate unique values", func(t *testing.T) {
		bytes1, err := CryptoRandomBytes(20)
		require.NoError(t, err)

		bytes2, err := CryptoRandomBytes(20)
		require.NoError(t, err)

		assert.NotEqual(t, bytes1, bytes2, "Random bytes should not be identical")
	})
}

func TestCryptoRandomHex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]+$`)

	t.Run("Encodes twice the byte length", func(t *testing.T) {
		str, err := CryptoRandomHex(32)
		require.NoError(t, err)
		assert.Len(t, str, 64)
		assert.Regexp(t, hexPattern, str)
	})

	t.Run("Generate unique values", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			str, err := CryptoRandomHex(32)
			require.NoError(t, err)
			_, dup := seen[str]
			assert.False(t, dup, "duplicate random hex string")
			seen[str] = struct{}{}
		}
	})
}
