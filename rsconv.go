// Package rsconv converts CODAR SeaSonde Range Series files between their
// big-endian binary form and an editable line-oriented text form.
//
// A Range Series file is a chunked binary: every block is a 4-byte type
// code, a 4-byte payload size and the payload. The AQFT root contains a
// HEAD region of metadata blocks and a BODY region of sample blocks, and
// an empty "END " block follows the root.
//
// # Basic Usage
//
// Binary to text:
//
//	data, _ := os.ReadFile("RSS_BML1_2024_01_01_0000.rs")
//	err := rsconv.Dump(os.Stdout, data, false)
//
// Text to binary:
//
//	text, _ := os.Open("RSS_BML1.txt")
//	out, _ := os.Create("RSS_BML1.rs")
//	err := rsconv.Generate(out, text)
//
// Checking that a file survives the text form unchanged:
//
//	report, err := rsconv.Verify(data)
//	fmt.Println(report.Match, report.InputDigest, report.OutputDigest)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// block packages. For finer control (little-endian engines, strict trailing
// byte checks, custom loggers) use the codec package directly.
package rsconv

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/codec"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/internal/hash"
)

// Decode decodes a binary image into a flat block sequence.
func Decode(data []byte, opts ...codec.Option) (block.Sequence, error) {
	return codec.NewDecoder(opts...).Decode(data)
}

// Encode reconciles the container sizes of seq and returns its binary
// image. seq is modified in place.
func Encode(seq block.Sequence, opts ...codec.Option) ([]byte, error) {
	if err := block.Reconcile(seq); err != nil {
		return nil, err
	}

	return codec.NewEncoder(opts...).Encode(seq)
}

// Dump writes the text rendering of a binary image to w. With headerOnly
// the rendering stops before the BODY record.
func Dump(w io.Writer, data []byte, headerOnly bool, opts ...codec.Option) error {
	seq, err := Decode(data, opts...)
	if err != nil {
		return err
	}

	opts = append(opts, codec.WithHeaderOnly(headerOnly))

	return codec.NewTextEncoder(opts...).EncodeTo(w, seq)
}

// Generate parses the text read from r and writes the binary image to w.
// Nothing is written when parsing, reconciliation or encoding fails.
func Generate(w io.Writer, r io.Reader, opts ...codec.Option) error {
	seq, err := codec.NewTextDecoder(opts...).DecodeReader(r)
	if err != nil {
		return err
	}
	if err := block.Reconcile(seq); err != nil {
		return err
	}

	return codec.NewEncoder(opts...).EncodeTo(w, seq)
}

// RoundTrip converts a binary image to text and back. It returns the
// regenerated image and the intermediate text.
func RoundTrip(data []byte, opts ...codec.Option) (out []byte, text []byte, err error) {
	var buf bytes.Buffer
	if err := Dump(&buf, data, false, opts...); err != nil {
		return nil, nil, errors.Wrap(err, "dump")
	}
	text = buf.Bytes()

	seq, err := codec.NewTextDecoder(opts...).Decode(text)
	if err != nil {
		return nil, text, errors.Wrap(err, "parse")
	}
	if out, err = Encode(seq, opts...); err != nil {
		return nil, text, errors.Wrap(err, "generate")
	}

	return out, text, nil
}

// VerifyReport is the outcome of Verify.
type VerifyReport struct {
	InputDigest  uint64
	OutputDigest uint64
	InputSize    int
	OutputSize   int
	TextSize     int
	Match        bool
	// FirstDiff is the offset of the first differing byte, or -1.
	FirstDiff int
}

// Verify round trips data through the text form and compares the
// regenerated image with the input. A mismatch returns the report together
// with ErrRoundTripMismatch.
func Verify(data []byte, opts ...codec.Option) (VerifyReport, error) {
	out, text, err := RoundTrip(data, opts...)
	if err != nil {
		return VerifyReport{}, err
	}

	report := VerifyReport{
		InputDigest:  hash.Digest(data),
		OutputDigest: hash.Digest(out),
		InputSize:    len(data),
		OutputSize:   len(out),
		TextSize:     len(text),
		FirstDiff:    firstDiff(data, out),
	}
	report.Match = report.FirstDiff < 0
	if !report.Match {
		return report, errors.Wrapf(errs.ErrRoundTripMismatch, "first difference at offset %d", report.FirstDiff)
	}

	return report, nil
}

func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}

	return -1
}
