package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewJoinCode returns a random uppercase alphanumeric code of the given length.
// The code is not checked for uniqueness.
func NewJoinCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("join code length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(joinCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "could not read random bytes")
		}
		code[i] = joinCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
