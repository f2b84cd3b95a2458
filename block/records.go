package block

import (
	"github.com/arloliu/rsconv/format"
)

// Fixed payload sizes of the leaf layouts.
const (
	SignatureSize   = 204
	FileTimeSize    = 4
	RxLossSize      = 8
	ConstantsSize   = 16
	OpaqueMinSize   = 4
	SweepSize       = 32
	BinFormatSize   = 8
	ReceiverTagSize = 4
	GPSSize         = 28
	IndexSize       = 4
	ScalingSize     = 16
	SamplePairSize  = 8

	// SignatureTextSize is the length of each text field of a sign block.
	SignatureTextSize = 64
)

// Signature is the content of a sign block.
type Signature struct {
	Version     format.FourCC
	FileType    format.FourCC
	SiteCode    format.FourCC
	UserFlags   uint32
	Description [SignatureTextSize]byte
	OwnerName   [SignatureTextSize]byte
	Comment     [SignatureTextSize]byte
}

func (*Signature) Kind() Kind   { return KindSignature }
func (*Signature) Size() uint32 { return SignatureSize }

// FileTime is the content of an mcda block. Stored counts seconds since the
// legacy 1904 epoch.
type FileTime struct {
	Stored uint32
}

func (*FileTime) Kind() Kind   { return KindFileTime }
func (*FileTime) Size() uint32 { return FileTimeSize }

// RxLoss is the content of a dbrf block.
type RxLoss struct {
	RxLoss float64
}

func (*RxLoss) Kind() Kind   { return KindRxLoss }
func (*RxLoss) Size() uint32 { return RxLossSize }

// Constants is the content of a cnst block.
type Constants struct {
	NChannels   int32
	NRanges     int32
	NSweeps     int32
	IQIndicator int32
}

func (*Constants) Kind() Kind   { return KindConstants }
func (*Constants) Size() uint32 { return ConstantsSize }

// Opaque is the content of an undocumented block, kept byte for byte.
type Opaque struct {
	Data []byte
}

func (*Opaque) Kind() Kind     { return KindOpaque }
func (o *Opaque) Size() uint32 { return uint32(len(o.Data)) }

// Sweep is the content of a swep block.
type Sweep struct {
	SamplesPerSweep int32
	SweepStart      float64
	SweepBandwidth  float64
	SweepRate       float64
	RangeOffset     int32
}

func (*Sweep) Kind() Kind   { return KindSweep }
func (*Sweep) Size() uint32 { return SweepSize }

// BinFormat is the content of an fbin block. It declares how the samples of
// the following afft and ifft blocks are laid out.
type BinFormat struct {
	Format format.FourCC
	Type   format.FourCC
}

func (*BinFormat) Kind() Kind   { return KindBinFormat }
func (*BinFormat) Size() uint32 { return BinFormatSize }

// ReceiverTag is the content of an rtag block.
type ReceiverTag struct {
	Tag uint32
}

func (*ReceiverTag) Kind() Kind   { return KindReceiverTag }
func (*ReceiverTag) Size() uint32 { return ReceiverTagSize }

// GPS is the content of a gps1 block. Stored is on the legacy 1904 epoch.
type GPS struct {
	Lat    float64
	Lon    float64
	Alt    float64
	Stored uint32
}

func (*GPS) Kind() Kind   { return KindGPS }
func (*GPS) Size() uint32 { return GPSSize }

// Index is the content of an indx block.
type Index struct {
	Index uint32
}

func (*Index) Kind() Kind   { return KindIndex }
func (*Index) Size() uint32 { return IndexSize }

// Scaling is the content of a scal block.
type Scaling struct {
	ScalarOne float64
	ScalarTwo float64
}

func (*Scaling) Kind() Kind   { return KindScaling }
func (*Scaling) Size() uint32 { return ScalingSize }

// IQ is one complex sample.
type IQ struct {
	I float32
	Q float32
}

// Samples is the content of an afft or ifft block.
type Samples struct {
	kind  Kind
	Pairs []IQ
}

// NewSamples creates a sample record of the given kind, which must be
// KindAntennaSamples or KindInterleavedSamples.
func NewSamples(kind Kind, pairs []IQ) *Samples {
	return &Samples{kind: kind, Pairs: pairs}
}

func (s *Samples) Kind() Kind   { return s.kind }
func (s *Samples) Size() uint32 { return uint32(len(s.Pairs) * SamplePairSize) }
