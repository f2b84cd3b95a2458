package codec

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/internal/log"
)

// TextDecoder parses the text rendering back into a flat block sequence.
//
// Leaf sizes are taken from the parsed records. Container sizes are left at
// zero for block.Reconcile to fill in.
type TextDecoder struct {
	cfg config
}

// NewTextDecoder creates a TextDecoder.
func NewTextDecoder(opts ...Option) *TextDecoder {
	return &TextDecoder{cfg: newConfig(opts...)}
}

// Decode parses text.
func (d *TextDecoder) Decode(text []byte) (block.Sequence, error) {
	return d.decode(block.NewCursor(string(text)))
}

// DecodeReader parses the text read from r.
func (d *TextDecoder) DecodeReader(r io.Reader) (block.Sequence, error) {
	c, err := block.ReadCursor(r)
	if err != nil {
		return nil, err
	}

	return d.decode(c)
}

func (d *TextDecoder) decode(c *block.Cursor) (block.Sequence, error) {
	var seq block.Sequence
	state := &block.State{}

	for {
		code, line, ok := c.NextRecord()
		if !ok {
			break
		}

		h, err := block.Lookup(code)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot gen block at line %d", line)
		}
		rec, err := h.Parse(c, state)
		if err != nil {
			return nil, errors.Wrapf(err, "error in %s block starting at line %d", code.Quote(), line)
		}

		blk := block.Block{Code: code, Record: rec}
		if rec != nil {
			blk.Size = rec.Size()
		}
		seq = append(seq, blk)
	}

	d.cfg.logger.Info("read text", log.Fields{
		"lines":  c.Lines(),
		"blocks": len(seq),
	})

	return seq, nil
}
