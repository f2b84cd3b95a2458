// Package testdata builds binary Range Series images for tests.
package testdata

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/rsconv/format"
)

var be = binary.BigEndian

// Header returns an 8-byte block header.
func Header(code format.FourCC, size uint32) []byte {
	b := be.AppendUint32(nil, uint32(code))
	return be.AppendUint32(b, size)
}

// Leaf returns a leaf block with the given payload.
func Leaf(code format.FourCC, payload ...[]byte) []byte {
	var body []byte
	for _, p := range payload {
		body = append(body, p...)
	}

	return append(Header(code, uint32(len(body))), body...)
}

// Container returns a container block wrapping children.
func Container(code format.FourCC, children ...[]byte) []byte {
	return Leaf(code, children...)
}

// File returns AQFT{HEAD{head...} BODY{body...}} followed by an empty
// terminator, the layout produced by the instrument.
func File(head [][]byte, body [][]byte) []byte {
	out := Container(format.CodeAQFT,
		Container(format.CodeHEAD, head...),
		Container(format.CodeBODY, body...),
	)

	return append(out, Header(format.CodeEND, 0)...)
}

func U32(v uint32) []byte  { return be.AppendUint32(nil, v) }
func I32(v int32) []byte   { return be.AppendUint32(nil, uint32(v)) }
func F32(v float32) []byte { return be.AppendUint32(nil, math.Float32bits(v)) }
func F64(v float64) []byte { return be.AppendUint64(nil, math.Float64bits(v)) }

// Code returns the four wire bytes of a code.
func Code(s string) []byte {
	b := format.ParseFourCC(s).Bytes()
	return b[:]
}

// Text returns s zero padded to n bytes.
func Text(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)

	return b
}

// Samples returns an I/Q payload of n pairs with distinct values.
func Samples(n int, seed float32) []byte {
	var b []byte
	for i := 0; i < n; i++ {
		b = append(b, F32(seed*float32(i+1))...)
		b = append(b, F32(-seed/float32(i+1))...)
	}

	return b
}

// HeadBlocks returns a complete HEAD region.
func HeadBlocks() [][]byte {
	return [][]byte{
		Leaf(format.CodeSign,
			Code("1.00"), Code("RSer"), Code("BML1"), U32(0x00000102),
			Text("Range Series test file", 64),
			Text("rsconv", 64),
			Text("", 64),
		),
		Leaf(format.CodeMcda, U32(3786825600)),
		Leaf(format.CodeDbrf, F64(-12.5)),
		Leaf(format.CodeCnst, I32(3), I32(2), I32(512), I32(1)),
		Leaf(format.CodeHasi, []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}),
		Leaf(format.CodeSwep, I32(2048), F64(4537500), F64(-25733.1), F64(2), I32(0)),
		Leaf(format.CodeFbin, Code("cviq"), Code("flt4")),
	}
}

// BodyBlocks returns a BODY region with two range cells.
func BodyBlocks() [][]byte {
	return [][]byte{
		Leaf(format.CodeRtag, U32(7)),
		Leaf(format.CodeGps1, F64(38.3178), F64(-123.0726), F64(15.25), U32(3786825601)),
		Leaf(format.CodeIndx, U32(0)),
		Leaf(format.CodeScal, F64(0.5), F64(1.0/3.0)),
		Leaf(format.CodeAfft, Samples(3, 0.75)),
		Leaf(format.CodeIfft, Samples(6, 1.5)),
		Leaf(format.CodeIndx, U32(1)),
		Leaf(format.CodeAfft, Samples(3, -2.25)),
	}
}

// SampleFile returns a complete, well-formed image.
func SampleFile() []byte {
	return File(HeadBlocks(), BodyBlocks())
}
