package invitation

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// TokenPrefix marks invitation token strings on the wire.
const TokenPrefix = "inv_"

// MaxGenerateAttempts bounds collision retries at creation time.
const MaxGenerateAttempts = 5

var tokenRegex = regexp.MustCompile(`^inv_[0-9a-f]{64}$`)

// HasTokenFormat reports whether s looks like an invitation token. Callers
// use this to reject garbage before touching the store.
func HasTokenFormat(s string) bool {
	return tokenRegex.MatchString(s)
}

// NewToken draws 32 cryptographically random bytes and returns
// "inv_" + hex(SHA-256(bytes)).
func NewToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	digest := sha256.Sum256(raw)
	return TokenPrefix + hex.EncodeToString(digest[:]), nil
}
