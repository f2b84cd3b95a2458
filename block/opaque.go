package block

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/format"
)

// opaqueHandler keeps the undocumented hasi block as raw bytes. The bytes
// have no field structure, so no byte order correction applies.
type opaqueHandler struct{ leafBase }

func (opaqueHandler) Code() format.FourCC { return format.CodeHasi }
func (opaqueHandler) Kind() Kind          { return KindOpaque }
func (opaqueHandler) MinSize() int        { return OpaqueMinSize }

func (opaqueHandler) Fixup(payload []byte, _ endian.EndianEngine) (Record, error) {
	if len(payload) < OpaqueMinSize {
		return nil, truncated(format.CodeHasi, len(payload), OpaqueMinSize)
	}

	return &Opaque{Data: append([]byte(nil), payload...)}, nil
}

const hexDigits = "0123456789abcdef"

func (opaqueHandler) Render(w *TextWriter, rec Record, _ *State) error {
	op, err := recordAs[*Opaque](format.CodeHasi, rec)
	if err != nil {
		return err
	}
	line := make([]byte, 0, len("data:")+3*len(op.Data))
	line = append(line, "data:"...)
	for _, b := range op.Data {
		line = append(line, ' ', hexDigits[b>>4], hexDigits[b&0x0f])
	}
	w.Code(format.CodeHasi)
	w.Line(string(line))
	w.End()

	return nil
}

func (opaqueHandler) Parse(c *Cursor, _ *State) (Record, error) {
	v, line, err := c.field("data")
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(v)
	if len(tokens) == 0 {
		return nil, invalid("data", v, line, errors.New("no bytes"))
	}
	data := make([]byte, len(tokens))
	for i, tok := range tokens {
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, invalid("data", tok, line, err)
		}
		data[i] = byte(b)
	}

	return &Opaque{Data: data}, nil
}

func (opaqueHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	op, err := encodeAs[*Opaque](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)

	return append(dst, op.Data...), nil
}
