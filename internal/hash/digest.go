package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of a file image.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// DigestString computes the xxHash64 of a text rendering.
func DigestString(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Format renders a digest as 16 lowercase hex digits.
func Format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
