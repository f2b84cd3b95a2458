// Package errs defines the sentinel errors returned by rsconv.
//
// Errors are created with github.com/cockroachdb/errors so that callers can
// wrap them with context (block code, field name, line number) and still test
// for the sentinel with errors.Is.
package errs

import "github.com/cockroachdb/errors"

// Binary structure errors.
var (
	// ErrInvalidHeaderSize is returned when a buffer is too short to hold a block header.
	ErrInvalidHeaderSize = errors.New("invalid block header size")
	// ErrBadRootKey is returned when a binary file does not start with the root container.
	ErrBadRootKey = errors.New("bad root block key")
	// ErrTruncatedBlock is returned when a leaf payload is shorter than its fixed layout.
	ErrTruncatedBlock = errors.New("block is truncated")
	// ErrMissingRecord is returned when a leaf block has no decoded record to encode or render.
	ErrMissingRecord = errors.New("block has no record")
	// ErrTrailingBytes is returned in strict mode when a leaf payload is longer than its layout.
	ErrTrailingBytes = errors.New("unexpected trailing bytes")
)

// Registry errors.
var (
	// ErrNoHandler is returned for type codes that are not in the block registry.
	ErrNoHandler = errors.New("no handler for block")
	// ErrUnsupportedSampleFormat is returned when sample blocks follow an fbin block
	// other than cviq/flt4.
	ErrUnsupportedSampleFormat = errors.New("unsupported sample format")
)

// Text parsing errors.
var (
	// ErrMissingParameter is returned when a required name:value line is absent from a record.
	ErrMissingParameter = errors.New("cannot find parameter")
	// ErrInvalidParameter is returned when a name:value line holds an unconvertible value.
	ErrInvalidParameter = errors.New("invalid parameter value")
	// ErrSampleLineCount is returned when a sample record line count is zero or not a multiple of three.
	ErrSampleLineCount = errors.New("bad number of sample lines")
)

// Size reconciliation errors.
var (
	// ErrMissingSentinel is returned when the root, head or body container is absent.
	ErrMissingSentinel = errors.New("missing sentinel block")
)

// Tooling errors.
var (
	// ErrUnsupportedCompression is returned for unknown compression names.
	ErrUnsupportedCompression = errors.New("unsupported compression")
	// ErrRoundTripMismatch is returned when a regenerated file differs from its source.
	ErrRoundTripMismatch = errors.New("round trip mismatch")
)
