// Package auth gates the admin surface behind a single shared secret.
//
// The secret stands in for real per-user authentication; everything that
// checks it goes through Verifier so the scheme can later be swapped for
// signed, expiring tokens without touching handler code.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

type Verifier interface {
	Verify(credential string) bool
}

type secretVerifier struct {
	secret []byte
}

// NewSecretVerifier compares credentials against a plaintext secret in
// constant time.
func NewSecretVerifier(secret string) Verifier {
	return &secretVerifier{secret: []byte(secret)}
}

func (v *secretVerifier) Verify(credential string) bool {
	if len(v.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(credential)) == 1
}

type hashVerifier struct {
	hash []byte
}

// NewHashVerifier compares credentials against a bcrypt hash, so the
// deployment environment never holds the secret in clear text.
func NewHashVerifier(hash string) Verifier {
	return &hashVerifier{hash: []byte(hash)}
}

func (v *hashVerifier) Verify(credential string) bool {
	if len(v.hash) == 0 || credential == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(credential)) == nil
}

// HashSecret produces a bcrypt hash suitable for ADMIN_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(b), err
}
