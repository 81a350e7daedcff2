// Package cryptox holds the password digest used by the local sign-in flow.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of the raw password bytes rendered
// as 64 lowercase hex characters. The same input always yields the same
// digest; there is no salt.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password digests to the stored value.
func VerifyPassword(stored string, password []byte) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
