package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// New returns an opaque random token string (64 hex characters).
func New() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
