package token

import (
	"fmt"
	"regexp"

	"github.com/go-authgate/tokengate/internal/util"
)

// SecretBytes is the amount of entropy behind every issued secret (256 bits).
const SecretBytes = 32

var secretPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// GenerateSecret returns a fresh opaque bearer secret as 64 lowercase hex characters.
func GenerateSecret() (string, error) {
	secret, err := util.CryptoRandomHex(SecretBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSecretGeneration, err)
	}
	return secret, nil
}

// IsWellFormedSecret reports whether s has the shape of a secret produced by GenerateSecret.
func IsWellFormedSecret(s string) bool {
	return secretPattern.MatchString(s)
}
