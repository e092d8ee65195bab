// Package hashing has base64 digest shortcuts for cache keys and
// fingerprints. The input values are hashed through their fmt.Sprint form,
// in order, with no separator.
package hashing

import (
	"crypto/sha1" //nolint:gosec // fingerprints, not security
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"
)

// SHA1 returns the standard base64 SHA-1 digest of values.
func SHA1(values ...any) string {
	return sum(sha1.New(), values)
}

// SHA256 returns the standard base64 SHA-256 digest of values.
func SHA256(values ...any) string {
	return sum(sha256.New(), values)
}

func sum(h hash.Hash, values []any) string {
	for _, v := range values {
		// hash.Hash writes never fail
		_, _ = fmt.Fprint(h, v)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
