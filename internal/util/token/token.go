package token_utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenLength is the number of random bytes drawn for every opaque token.
// Hex encoding doubles it, so callers always receive 64 characters.
const TokenLength = 32

// Generate returns a new opaque, URL-safe token with 256 bits of entropy.
// Tokens are used as API key secrets and as public share link identifiers,
// so they must never come from a non-cryptographic random source. If the
// system random source is unavailable the error is returned as-is; callers
// must abort the operation instead of falling back to something weaker.
func Generate() (string, error) {
	tokenBytes := make([]byte, TokenLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to read from secure random source: %w", err)
	}

	return hex.EncodeToString(tokenBytes), nil
}
