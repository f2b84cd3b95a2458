package section

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

// Header is the 8-byte header in front of every block.
type Header struct {
	// Code is the block type code. byte offset 0-3
	Code format.FourCC
	// Size is the payload length in bytes, excluding the header. byte offset 4-7
	Size uint32
}

// Parse parses the header from a byte slice using the given engine.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 8 bytes)
//   - engine: Wire byte order
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than a header
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return errors.Wrapf(errs.ErrInvalidHeaderSize, "need %d bytes, have %d", HeaderSize, len(data))
	}

	h.Code = format.FourCC(engine.Uint32(data[CodeOffset : CodeOffset+4]))
	h.Size = engine.Uint32(data[SizeOffset : SizeOffset+4])

	return nil
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, uint32(h.Code))
	return engine.AppendUint32(dst, h.Size)
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	h := Header{}
	if err := h.Parse(data, engine); err != nil {
		return Header{}, err
	}

	return h, nil
}
