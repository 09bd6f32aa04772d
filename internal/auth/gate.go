// Package auth implements the shared-secret admin gate: one fixed password,
// no per-user credentials, no server-side session state.
package auth

import "crypto/subtle"

// Gate compares candidate passwords against a single shared secret.
type Gate struct {
	secret string
}

// NewGate creates a gate for the given shared secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Check reports whether candidate matches the shared secret. The comparison
// is constant-time.
func (g *Gate) Check(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(candidate)) == 1
}
