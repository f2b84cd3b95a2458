package block

import (
	"math"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/format"
)

// fieldReader reads packed fields from a leaf payload in wire order.
// Callers check the payload length against the layout size first.
type fieldReader struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

func newFieldReader(buf []byte, engine endian.EndianEngine) *fieldReader {
	return &fieldReader{buf: buf, engine: engine}
}

func (r *fieldReader) uint32() uint32 {
	v := r.engine.Uint32(r.buf[r.off:])
	r.off += 4

	return v
}

func (r *fieldReader) int32() int32 {
	return int32(r.uint32())
}

func (r *fieldReader) float32() float32 {
	return math.Float32frombits(r.uint32())
}

func (r *fieldReader) float64() float64 {
	v := r.engine.Uint64(r.buf[r.off:])
	r.off += 8

	return math.Float64frombits(v)
}

// fourCC reads a code whose byte order is corrected like any u32 field.
func (r *fieldReader) fourCC() format.FourCC {
	return format.FourCC(r.uint32())
}

// rawFourCC reads four bytes as they appear on the wire.
func (r *fieldReader) rawFourCC() format.FourCC {
	var b [4]byte
	copy(b[:], r.buf[r.off:r.off+4])
	r.off += 4

	return format.MakeFourCC(b)
}

func (r *fieldReader) text(dst []byte) {
	r.off += copy(dst, r.buf[r.off:r.off+len(dst)])
}

func appendInt32(dst []byte, v int32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(dst, uint32(v))
}

func appendFloat32(dst []byte, v float32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(dst, math.Float32bits(v))
}

func appendFloat64(dst []byte, v float64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(dst, math.Float64bits(v))
}

func appendRawFourCC(dst []byte, c format.FourCC) []byte {
	b := c.Bytes()
	return append(dst, b[:]...)
}
