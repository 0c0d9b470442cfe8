// Package password wraps bcrypt hashing and verification for user
// credentials.
//
// The work factor can be raised at startup via Configure; the default is
// bcrypt's standard cost. Verification never surfaces an error: a malformed
// or mismatched hash is simply "no match".
package password

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is used when Configure is not called.
const DefaultCost = bcrypt.DefaultCost

var (
	mu   sync.RWMutex
	cost = DefaultCost
)

// Configure sets the bcrypt cost used by Hash. Values outside bcrypt's
// supported range are ignored. Call once during startup.
func Configure(c int) {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return
	}
	mu.Lock()
	cost = c
	mu.Unlock()
}

// Cost returns the currently configured bcrypt cost.
func Cost() int {
	mu.RLock()
	defer mu.RUnlock()
	return cost
}

// Hash returns a salted bcrypt digest of plaintext. Two calls on the same
// input produce different digests; both verify.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost())
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hashes verify as false.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
