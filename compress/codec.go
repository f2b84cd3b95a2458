// Package compress provides whole-file compression codecs for Range Series
// archives.
//
// Range Series files are often archived compressed. The dump command
// decompresses its input before decoding, and the gen command can compress
// the generated binary. Each codec works on a complete file image.
package compress

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

// Compressor compresses a complete file image.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a file image produced by the matching Compressor.
//
// Corrupted input or input produced by another algorithm returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
)

// CreateCodec is a factory function that creates a Codec for the compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, errors.Wrapf(errs.ErrUnsupportedCompression, "type %s", compressionType)
	}
}

// CodecByName returns the codec for a user-facing name such as "zstd".
func CodecByName(name string) (Codec, format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(name)
	if !ok {
		return nil, 0, errors.Wrapf(errs.ErrUnsupportedCompression, "%q", name)
	}

	codec, err := CreateCodec(ct)

	return codec, ct, err
}

// Detect identifies the compression of a file image from its magic bytes.
// Images without a known magic are reported as CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// ForPath guesses the compression type from a file name extension.
func ForPath(name string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// DecompressAuto detects the compression of data and decompresses it.
func DecompressAuto(data []byte) ([]byte, format.CompressionType, error) {
	ct := Detect(data)
	if ct == format.CompressionNone {
		return data, ct, nil
	}

	codec, err := CreateCodec(ct)
	if err != nil {
		return nil, ct, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, ct, errors.Wrapf(err, "%s decompression", ct)
	}

	return out, ct, nil
}
