package block

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

// samplesHandler handles the afft and ifft blocks, arrays of float32 I/Q
// pairs. Only the cviq/flt4 layout declared by a preceding fbin is supported.
type samplesHandler struct {
	leafBase
	code format.FourCC
	kind Kind
}

func (h samplesHandler) Code() format.FourCC { return h.code }
func (h samplesHandler) Kind() Kind          { return h.kind }
func (samplesHandler) MinSize() int          { return SamplePairSize }

func (h samplesHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < SamplePairSize {
		return nil, truncated(h.code, len(payload), SamplePairSize)
	}
	n := len(payload) / SamplePairSize
	pairs := make([]IQ, n)
	r := newFieldReader(payload, engine)
	for i := range pairs {
		pairs[i].I = r.float32()
		pairs[i].Q = r.float32()
	}

	return NewSamples(h.kind, pairs), nil
}

// SampleLine renders one sample line: a three wide index, then I and Q.
func SampleLine(i int, s IQ) string {
	idx := strconv.Itoa(i)
	if len(idx) < 3 {
		idx = strings.Repeat(" ", 3-len(idx)) + idx
	}

	return idx + " " + FormatSample(s.I) + " " + FormatSample(s.Q)
}

func (h samplesHandler) Render(w *TextWriter, rec Record, state *State) error {
	samples, err := recordAs[*Samples](h.code, rec)
	if err != nil {
		return err
	}
	if err := state.CheckSampleFormat(); err != nil {
		return errors.Wrapf(err, "rendering %s", h.code.Quote())
	}
	w.Code(h.code)
	for i, s := range samples.Pairs {
		w.Line(SampleLine(i, s))
	}
	w.End()

	return nil
}

// Parse reads the sample lines up to the next blank line. The line count
// must be a positive multiple of three, and every line holds one sample.
func (h samplesHandler) Parse(c *Cursor, state *State) (Record, error) {
	lines := c.RecordLines()
	if len(lines) == 0 || len(lines)%3 != 0 {
		return nil, errors.Wrapf(errs.ErrSampleLineCount,
			"%d lines reading %s, lines must be a multiple of 3", len(lines), h.code.Quote())
	}
	if err := state.CheckSampleFormat(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", h.code.Quote())
	}

	pairs := make([]IQ, len(lines))
	for i, line := range lines {
		iq, err := parseSampleLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d at line %d", i, c.LineNo(i))
		}
		pairs[i] = iq
	}
	c.Consume(len(lines))

	return NewSamples(h.kind, pairs), nil
}

func parseSampleLine(line string) (IQ, error) {
	tok := strings.Fields(line)
	if len(tok) < 3 {
		return IQ{}, errors.Wrapf(errs.ErrInvalidParameter, "want index I Q, got %q", line)
	}
	if _, err := strconv.Atoi(tok[0]); err != nil {
		return IQ{}, errors.Wrapf(errs.ErrInvalidParameter, "index %q", tok[0])
	}
	i, err := strconv.ParseFloat(tok[1], 32)
	if err != nil {
		return IQ{}, errors.Wrapf(errs.ErrInvalidParameter, "I value %q", tok[1])
	}
	q, err := strconv.ParseFloat(tok[2], 32)
	if err != nil {
		return IQ{}, errors.Wrapf(errs.ErrInvalidParameter, "Q value %q", tok[2])
	}

	return IQ{I: float32(i), Q: float32(q)}, nil
}

func (h samplesHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	samples, err := encodeAs[*Samples](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	for _, s := range samples.Pairs {
		dst = appendFloat32(dst, s.I, engine)
		dst = appendFloat32(dst, s.Q, engine)
	}

	return dst, nil
}
