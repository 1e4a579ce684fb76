package hash

import (
	"crypto"
	"crypto/sha256"
	"fmt"
)

/*
Sum returns the hash of the values, each value is CBOR encoded before
it is written to the hasher.
*/
func Sum(hashAlgorithm crypto.Hash, values ...any) ([]byte, error) {
	hasher := New(hashAlgorithm.New())
	for _, value := range values {
		hasher.Write(value)
	}
	res, err := hasher.Sum()
	if err != nil {
		return nil, fmt.Errorf("calculating hash: %w", err)
	}
	return res, nil
}

// NewSha256 returns CBOR hasher backed by SHA-256.
func NewSha256() *Hash {
	return New(sha256.New())
}
