package block

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/section"
)

// Handler converts one block type between its wire, record and text forms.
type Handler interface {
	// Code returns the four byte type code handled.
	Code() format.FourCC
	// Kind returns the block kind.
	Kind() Kind
	// Container reports whether the block holds child blocks.
	Container() bool
	// MinSize returns the smallest payload the layout can be decoded from.
	MinSize() int
	// Fixup decodes a wire payload into a record. Payloads shorter than
	// MinSize fail with ErrTruncatedBlock. Containers return a nil record.
	Fixup(payload []byte, engine endian.EndianEngine) (Record, error)
	// Render writes the text record for rec.
	Render(w *TextWriter, rec Record, state *State) error
	// Parse reads the record whose code line was just consumed by c.
	Parse(c *Cursor, state *State) (Record, error)
	// Encode appends the header and record fields of blk to dst. The header
	// size covers blk.Trailing, which the package level Encode appends.
	Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error)
}

var registry = map[format.FourCC]Handler{}

func register(h Handler) {
	registry[h.Code()] = h
}

func init() {
	register(containerHandler{code: format.CodeAQFT, kind: KindRoot})
	register(containerHandler{code: format.CodeHEAD, kind: KindHead})
	register(containerHandler{code: format.CodeBODY, kind: KindBody})
	register(containerHandler{code: format.CodeEND, kind: KindEnd})
	register(signatureHandler{})
	register(fileTimeHandler{})
	register(rxLossHandler{})
	register(constantsHandler{})
	register(opaqueHandler{})
	register(sweepHandler{})
	register(binFormatHandler{})
	register(receiverTagHandler{})
	register(gpsHandler{})
	register(indexHandler{})
	register(scalingHandler{})
	register(samplesHandler{code: format.CodeAfft, kind: KindAntennaSamples})
	register(samplesHandler{code: format.CodeIfft, kind: KindInterleavedSamples})
}

// Lookup returns the handler registered for code.
func Lookup(code format.FourCC) (Handler, error) {
	h, ok := registry[code]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNoHandler, "%s", code.Quote())
	}

	return h, nil
}

// KindOf returns the kind of a code, or KindUnknown.
func KindOf(code format.FourCC) Kind {
	if h, ok := registry[code]; ok {
		return h.Kind()
	}

	return KindUnknown
}

// Codes returns the registered type codes.
func Codes() []format.FourCC {
	codes := make([]format.FourCC, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}

	return codes
}

// leafBase provides the shared parts of leaf handlers.
type leafBase struct{}

func (leafBase) Container() bool { return false }

func truncated(code format.FourCC, have, want int) error {
	return errors.Wrapf(errs.ErrTruncatedBlock, "%s has %d bytes, layout needs %d", code.Quote(), have, want)
}

func missing(code format.FourCC) error {
	return errors.Wrapf(errs.ErrTruncatedBlock, "%s has no decoded record", code.Quote())
}

// appendLeafHeader appends the block header sized after the record and
// its trailing bytes.
func appendLeafHeader(dst []byte, blk *Block, engine endian.EndianEngine) []byte {
	hdr := section.Header{Code: blk.Code, Size: blk.LeafSize()}
	return hdr.AppendTo(dst, engine)
}

// Encode appends the wire form of blk to dst: the handler's header and
// fields, followed for leaves by the trailing bytes kept from decoding.
func Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	h, err := Lookup(blk.Code)
	if err != nil {
		return dst, err
	}
	if dst, err = h.Encode(dst, blk, engine); err != nil {
		return dst, err
	}
	if !h.Container() {
		dst = append(dst, blk.Trailing...)
	}

	return dst, nil
}

// recordAs converts rec to the concrete record type of a handler.
func recordAs[T Record](code format.FourCC, rec Record) (T, error) {
	var zero T
	if rec == nil {
		return zero, missing(code)
	}
	r, ok := rec.(T)
	if !ok {
		return zero, errors.Newf("%s cannot hold a %s record", code.Quote(), rec.Kind())
	}

	return r, nil
}

// encodeAs is recordAs for the encode direction, where a missing record
// means the block was never decoded.
func encodeAs[T Record](blk *Block) (T, error) {
	if blk.Record == nil {
		var zero T
		return zero, errors.Wrapf(errs.ErrMissingRecord, "%s", blk.Code.Quote())
	}

	return recordAs[T](blk.Code, blk.Record)
}

type containerHandler struct {
	code format.FourCC
	kind Kind
}

func (h containerHandler) Code() format.FourCC { return h.code }
func (h containerHandler) Kind() Kind          { return h.kind }
func (containerHandler) Container() bool       { return true }
func (containerHandler) MinSize() int          { return 0 }

func (containerHandler) Fixup([]byte, endian.EndianEngine) (Record, error) {
	return nil, nil
}

func (h containerHandler) Render(w *TextWriter, _ Record, _ *State) error {
	w.Code(h.code)
	w.End()

	return nil
}

func (containerHandler) Parse(*Cursor, *State) (Record, error) {
	return nil, nil
}

// Encode writes only the header; the children are the blocks that follow.
func (containerHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	hdr := section.Header{Code: blk.Code, Size: blk.Size}
	return hdr.AppendTo(dst, engine), nil
}
