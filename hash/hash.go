// Package hash calculates and verifies the plaintext checksums stored in envelopes
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256 returns a 32 bytes SHA256 hash of the input
func SHA256(in []byte) []byte {
	sum := sha256.Sum256(in)
	return sum[:]
}

// Checksum returns the hex encoded SHA256 hash of the input
func Checksum(in []byte) string {
	return hex.EncodeToString(SHA256(in))
}

// Verify returns true if checksum is the hex encoded SHA256 hash of the input
func Verify(in []byte, checksum string) bool {
	expected, err := hex.DecodeString(checksum)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(expected, SHA256(in)) == 1
}
