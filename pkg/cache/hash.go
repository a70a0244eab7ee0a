package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashKey builds a stable cache key of the form "prefix:<sha256 hex>".
// The prefix labels the record kind (e.g. "passage"); the parts are
// hashed so free-form reference text never shapes a file name.
func hashKey(prefix string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		// NUL separator keeps ("ab","c") distinct from ("a","bc").
		h.Write([]byte{0})
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
