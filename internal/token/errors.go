package token

import "errors"

// ErrSecretGeneration is returned when the system random source fails
var ErrSecretGeneration = errors.New("failed to generate token secret")
