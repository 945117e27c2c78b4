package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotFound is returned when no token matches a digest.
var ErrNotFound = errors.New("token not found")

// Token is an opaque bearer credential bound to one user. Only the SHA-256
// digest of the plaintext is ever persisted.
type Token struct {
	ID        string
	UserID    string
	Digest    string
	Name      string
	CreatedAt time.Time
}

// DigestOf returns the hex-encoded SHA-256 digest of a plaintext token.
func DigestOf(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
