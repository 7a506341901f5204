package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// AtlasKey builds the cache key for an atlas rendered from the given palette
// file bytes with the given seed. The key format is: atlas:hash(content||seed).
func AtlasKey(content []byte, seed int64) string {
	h := sha256.New()
	h.Write(content)
	var s [8]byte
	binary.BigEndian.PutUint64(s[:], uint64(seed))
	h.Write(s[:])
	return fmt.Sprintf("atlas:%s", hex.EncodeToString(h.Sum(nil)))
}
