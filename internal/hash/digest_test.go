package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Digest([]byte(tt.data)))
			assert.Equal(t, tt.sum, DigestString(tt.data))
		})
	}
}

func TestDigestDetectsSingleByteChange(t *testing.T) {
	a := []byte("AQFT\x00\x00\x00\x38")
	b := []byte("AQFT\x00\x00\x00\x39")
	assert.NotEqual(t, Digest(a), Digest(b))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ef46db3751d8e999", Format(0xef46db3751d8e999))
	assert.Equal(t, "0000000000000001", Format(1))
}
