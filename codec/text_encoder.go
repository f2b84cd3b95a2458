package codec

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/internal/log"
	"github.com/arloliu/rsconv/internal/pool"
	"github.com/arloliu/rsconv/section"
)

// TextEncoder renders a flat block sequence as text, one record per block.
type TextEncoder struct {
	cfg config
}

// NewTextEncoder creates a TextEncoder.
func NewTextEncoder(opts ...Option) *TextEncoder {
	return &TextEncoder{cfg: newConfig(opts...)}
}

// Encode returns the text rendering of seq.
func (e *TextEncoder) Encode(seq block.Sequence) ([]byte, error) {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	if err := e.render(bb, seq); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// EncodeTo writes the text rendering of seq to w. Nothing is written when
// any block fails to render.
func (e *TextEncoder) EncodeTo(w io.Writer, seq block.Sequence) error {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	if err := e.render(bb, seq); err != nil {
		return err
	}
	if _, err := bb.WriteTo(w); err != nil {
		return errors.Wrap(err, "write text")
	}

	return nil
}

func (e *TextEncoder) render(bb *pool.ByteBuffer, seq block.Sequence) error {
	w := block.NewTextWriter(bb.B)
	state := &block.State{}

	n := 0
	for i := range seq {
		blk := &seq[i]
		if e.cfg.headerOnly && blk.Code == section.BodyCode {
			break
		}

		h, err := block.Lookup(blk.Code)
		if err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
		if err := h.Render(w, blk.Record, state); err != nil {
			return errors.Wrapf(err, "cannot dump block %d", i)
		}
		n++
	}
	bb.B = w.Bytes()

	e.cfg.logger.Debug("rendered range series", log.Fields{
		"records":     n,
		"bytes":       bb.Len(),
		"header_only": e.cfg.headerOnly,
	})

	return nil
}
