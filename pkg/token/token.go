package token

import (
	"crypto/rand"
	"encoding/hex"
)

// KeyLength is the length of a generated token key in hex characters.
const KeyLength = 40

// GenerateKey returns a new opaque token key: 20 random bytes, hex encoded.
// The key carries no claims; it is only meaningful as a store lookup.
func GenerateKey() (string, error) {
	b := make([]byte, KeyLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
