package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/log"
	"github.com/arloliu/rsconv/section"
)

// Decoder turns a binary Range Series image into a flat block sequence.
type Decoder struct {
	cfg config
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{cfg: newConfig(opts...)}
}

// Decode decodes data, which must start with the AQFT root block.
//
// Containers are followed in the result by their decoded children. Declared
// sizes larger than the remaining bytes are clamped with a warning. Leaves
// too short for their layout are kept with a nil Record and a warning; they
// fail later when rendered. Unknown type codes abort decoding.
func (d *Decoder) Decode(data []byte) (block.Sequence, error) {
	root, err := section.ParseHeader(data, d.cfg.engine)
	if err != nil {
		return nil, err
	}
	if root.Code != section.RootCode {
		return nil, errors.Wrapf(errs.ErrBadRootKey, "got %s", root.Code.Quote())
	}

	d.cfg.logger.Debug("decoding range series", log.Fields{
		"bytes":      len(data),
		"wire_order": endian.Name(d.cfg.engine),
		"host_order": endian.Name(endian.CheckEndianness()),
		"swap":       endian.NeedsSwap(d.cfg.engine),
	})

	seq := make(block.Sequence, 0, len(data)/64+4)
	seq, err = d.decodeLevel(seq, data, 0, 0)
	if err != nil {
		return nil, err
	}

	d.cfg.logger.Debug("decoded range series", log.Fields{
		"blocks": len(seq),
		"leaves": seq.Leaves(),
	})

	return seq, nil
}

// decodeLevel decodes the blocks of one container payload and appends them
// to seq. offset is the position of data in the whole image.
func (d *Decoder) decodeLevel(seq block.Sequence, data []byte, offset int, depth int) (block.Sequence, error) {
	for len(data) > 0 {
		if len(data) < section.HeaderSize {
			d.cfg.logger.Warning("partial block header", log.Fields{
				"offset": offset,
				"bytes":  len(data),
				"depth":  depth,
			})

			return seq, nil
		}

		hdr, err := section.ParseHeader(data, d.cfg.engine)
		if err != nil {
			return nil, err
		}
		data = data[section.HeaderSize:]
		offset += section.HeaderSize

		size := int(hdr.Size)
		if uint64(hdr.Size) > uint64(len(data)) {
			d.cfg.logger.Warning("block size truncated", log.Fields{
				"block":    hdr.Code.String(),
				"declared": hdr.Size,
				"actual":   len(data),
				"offset":   offset,
			})
			size = len(data)
		}
		payload := data[:size]

		h, err := block.Lookup(hdr.Code)
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", offset-section.HeaderSize)
		}

		blk := block.Block{Code: hdr.Code, Size: uint32(size)}
		if h.Container() {
			seq = append(seq, blk)
			if seq, err = d.decodeLevel(seq, payload, offset, depth+1); err != nil {
				return nil, err
			}
		} else {
			if blk.Record, blk.Trailing, err = d.fixup(h, hdr.Code, payload, offset); err != nil {
				return nil, err
			}
			blk.Payload = append([]byte(nil), payload...)
			seq = append(seq, blk)
		}

		data = data[size:]
		offset += size
	}

	return seq, nil
}

// fixup decodes a leaf payload. Bytes beyond the record layout are returned
// as the trailing part of the block.
func (d *Decoder) fixup(h block.Handler, code format.FourCC, payload []byte, offset int) (block.Record, []byte, error) {
	rec, err := h.Fixup(payload, d.cfg.engine)
	if errors.Is(err, errs.ErrTruncatedBlock) {
		d.cfg.logger.Warning("block is truncated", log.Fields{
			"block":  code.String(),
			"bytes":  len(payload),
			"min":    h.MinSize(),
			"offset": offset,
		})

		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	layout := int(rec.Size())
	if extra := len(payload) - layout; extra > 0 {
		if d.cfg.strictTrailing {
			return nil, nil, errors.Wrapf(errs.ErrTrailingBytes, "%s has %d bytes beyond its layout", code.Quote(), extra)
		}
		d.cfg.logger.Warning("trailing bytes kept", log.Fields{
			"block":  code.String(),
			"extra":  extra,
			"offset": offset,
		})

		return rec, append([]byte(nil), payload[layout:]...), nil
	}

	return rec, nil, nil
}
