package codec

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/internal/log"
	"github.com/arloliu/rsconv/internal/pool"
)

// Encoder serializes a flat block sequence to the binary form.
//
// Container sizes are written as they are, so sequences parsed from text
// must go through block.Reconcile first.
type Encoder struct {
	cfg config
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{cfg: newConfig(opts...)}
}

// Encode returns the binary image of seq.
func (e *Encoder) Encode(seq block.Sequence) ([]byte, error) {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	if err := e.encode(bb, seq); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// EncodeTo writes the binary image of seq to w. Nothing is written when
// any block fails to encode.
func (e *Encoder) EncodeTo(w io.Writer, seq block.Sequence) error {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	if err := e.encode(bb, seq); err != nil {
		return err
	}
	if _, err := bb.WriteTo(w); err != nil {
		return errors.Wrap(err, "write binary")
	}

	return nil
}

func (e *Encoder) encode(bb *pool.ByteBuffer, seq block.Sequence) error {
	for i := range seq {
		var err error
		if bb.B, err = block.Encode(bb.B, &seq[i], e.cfg.engine); err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
	}

	e.cfg.logger.Debug("encoded range series", log.Fields{
		"blocks": len(seq),
		"bytes":  bb.Len(),
	})

	return nil
}
