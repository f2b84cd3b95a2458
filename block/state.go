package block

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

// State is the context carried forward through one sequence. It is filled by
// fbin, indx and scal blocks and consulted by the sample blocks that follow.
type State struct {
	BinFormat format.FourCC
	BinType   format.FourCC
	Index     uint32
	ScalarOne float64
	ScalarTwo float64
}

// Observe updates the state from a record. Records that carry no context
// are ignored.
func (s *State) Observe(rec Record) {
	switch r := rec.(type) {
	case *BinFormat:
		s.BinFormat = r.Format
		s.BinType = r.Type
	case *Index:
		s.Index = r.Index
	case *Scaling:
		s.ScalarOne = r.ScalarOne
		s.ScalarTwo = r.ScalarTwo
	}
}

// CheckSampleFormat returns ErrUnsupportedSampleFormat unless the declared
// sample layout is complex I/Q float32.
func (s *State) CheckSampleFormat() error {
	if s.BinFormat != format.BinFormatCVIQ {
		return errors.Wrapf(errs.ErrUnsupportedSampleFormat, "cannot handle format %s", s.BinFormat.Quote())
	}
	if s.BinType != format.BinTypeFLT4 {
		return errors.Wrapf(errs.ErrUnsupportedSampleFormat, "cannot handle type %s", s.BinType.Quote())
	}

	return nil
}
