package assets

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashWidth is the number of hex characters of the SHA-256 digest kept in
// hashed file and directory names. Eight characters (32 bits) keep names
// short; collisions are not a concern at the asset count of one build.
const HashWidth = 8

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashPrefix returns the first HashWidth hex characters of the SHA-256
// digest of data.
func HashPrefix(data []byte) string {
	return Hash(data)[:HashWidth]
}
