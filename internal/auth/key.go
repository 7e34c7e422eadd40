package auth

import (
	"crypto/rand"
	"fmt"
)

const signingKeySize = 32

// NewSigningKey generates the process-wide HMAC key. Tokens signed with it do
// not survive a restart.
func NewSigningKey() ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return key, nil
}
