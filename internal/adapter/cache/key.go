package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashCacheKey derives a fixed size key from possibly large sources.
func hashCacheKey(parts ...string) string {
	hash := sha256.New()
	for _, p := range parts {
		hash.Write([]byte(p))
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil))
}
