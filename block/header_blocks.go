package block

import (
	"bytes"
	"strconv"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/format"
)

// sign

type signatureHandler struct{ leafBase }

func (signatureHandler) Code() format.FourCC { return format.CodeSign }
func (signatureHandler) Kind() Kind          { return KindSignature }
func (signatureHandler) MinSize() int        { return SignatureSize }

func (signatureHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < SignatureSize {
		return nil, truncated(format.CodeSign, len(payload), SignatureSize)
	}
	r := newFieldReader(payload, engine)
	rec := &Signature{}
	rec.Version = r.rawFourCC()
	rec.FileType = r.rawFourCC()
	rec.SiteCode = r.rawFourCC()
	rec.UserFlags = r.uint32()
	r.text(rec.Description[:])
	r.text(rec.OwnerName[:])
	r.text(rec.Comment[:])

	return rec, nil
}

// cString returns b up to the first NUL.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}

func (signatureHandler) Render(w *TextWriter, rec Record, _ *State) error {
	sign, err := recordAs[*Signature](format.CodeSign, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeSign)
	w.Field("version", sign.Version.String())
	w.Field("filetype", sign.FileType.String())
	w.Field("sitecode", sign.SiteCode.String())
	w.Field("userflags", strconv.FormatUint(uint64(sign.UserFlags), 16))
	w.Field("description", cString(sign.Description[:]))
	w.Field("ownername", cString(sign.OwnerName[:]))
	w.Field("comment", cString(sign.Comment[:]))
	w.End()

	return nil
}

func (signatureHandler) Parse(c *Cursor, _ *State) (Record, error) {
	var err error
	sign := &Signature{}
	if sign.Version, err = c.RawFourCC("version"); err != nil {
		return nil, err
	}
	if sign.FileType, err = c.RawFourCC("filetype"); err != nil {
		return nil, err
	}
	if sign.SiteCode, err = c.RawFourCC("sitecode"); err != nil {
		return nil, err
	}
	if sign.UserFlags, err = c.Hex32("userflags"); err != nil {
		return nil, err
	}
	if err = c.Text("description", sign.Description[:]); err != nil {
		return nil, err
	}
	if err = c.Text("ownername", sign.OwnerName[:]); err != nil {
		return nil, err
	}
	if err = c.Text("comment", sign.Comment[:]); err != nil {
		return nil, err
	}

	return sign, nil
}

func (signatureHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	sign, err := encodeAs[*Signature](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = appendRawFourCC(dst, sign.Version)
	dst = appendRawFourCC(dst, sign.FileType)
	dst = appendRawFourCC(dst, sign.SiteCode)
	dst = engine.AppendUint32(dst, sign.UserFlags)
	dst = append(dst, sign.Description[:]...)
	dst = append(dst, sign.OwnerName[:]...)
	dst = append(dst, sign.Comment[:]...)

	return dst, nil
}

// mcda

type fileTimeHandler struct{ leafBase }

func (fileTimeHandler) Code() format.FourCC { return format.CodeMcda }
func (fileTimeHandler) Kind() Kind          { return KindFileTime }
func (fileTimeHandler) MinSize() int        { return FileTimeSize }

func (fileTimeHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < FileTimeSize {
		return nil, truncated(format.CodeMcda, len(payload), FileTimeSize)
	}

	return &FileTime{Stored: engine.Uint32(payload)}, nil
}

func (fileTimeHandler) Render(w *TextWriter, rec Record, _ *State) error {
	ft, err := recordAs[*FileTime](format.CodeMcda, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeMcda)
	w.Field("filetimestamp", FormatLegacyTime(ft.Stored))
	w.End()

	return nil
}

func (fileTimeHandler) Parse(c *Cursor, _ *State) (Record, error) {
	stored, err := c.LegacyTime("filetimestamp")
	if err != nil {
		return nil, err
	}

	return &FileTime{Stored: stored}, nil
}

func (fileTimeHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	ft, err := encodeAs[*FileTime](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)

	return engine.AppendUint32(dst, ft.Stored), nil
}

// dbrf

type rxLossHandler struct{ leafBase }

func (rxLossHandler) Code() format.FourCC { return format.CodeDbrf }
func (rxLossHandler) Kind() Kind          { return KindRxLoss }
func (rxLossHandler) MinSize() int        { return RxLossSize }

func (rxLossHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < RxLossSize {
		return nil, truncated(format.CodeDbrf, len(payload), RxLossSize)
	}

	return &RxLoss{RxLoss: newFieldReader(payload, engine).float64()}, nil
}

func (rxLossHandler) Render(w *TextWriter, rec Record, _ *State) error {
	loss, err := recordAs[*RxLoss](format.CodeDbrf, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeDbrf)
	w.Field("rxloss", FormatDouble(loss.RxLoss))
	w.End()

	return nil
}

func (rxLossHandler) Parse(c *Cursor, _ *State) (Record, error) {
	v, err := c.Float64("rxloss")
	if err != nil {
		return nil, err
	}

	return &RxLoss{RxLoss: v}, nil
}

func (rxLossHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	loss, err := encodeAs[*RxLoss](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)

	return appendFloat64(dst, loss.RxLoss, engine), nil
}

// cnst

type constantsHandler struct{ leafBase }

func (constantsHandler) Code() format.FourCC { return format.CodeCnst }
func (constantsHandler) Kind() Kind          { return KindConstants }
func (constantsHandler) MinSize() int        { return ConstantsSize }

func (constantsHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < ConstantsSize {
		return nil, truncated(format.CodeCnst, len(payload), ConstantsSize)
	}
	r := newFieldReader(payload, engine)

	return &Constants{
		NChannels:   r.int32(),
		NRanges:     r.int32(),
		NSweeps:     r.int32(),
		IQIndicator: r.int32(),
	}, nil
}

func (constantsHandler) Render(w *TextWriter, rec Record, _ *State) error {
	cnst, err := recordAs[*Constants](format.CodeCnst, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeCnst)
	w.Field("nchannels", strconv.FormatInt(int64(cnst.NChannels), 10))
	w.Field("nranges", strconv.FormatInt(int64(cnst.NRanges), 10))
	w.Field("nsweeps", strconv.FormatInt(int64(cnst.NSweeps), 10))
	w.Field("iqindicator", strconv.FormatInt(int64(cnst.IQIndicator), 10))
	w.End()

	return nil
}

func (constantsHandler) Parse(c *Cursor, _ *State) (Record, error) {
	var err error
	cnst := &Constants{}
	if cnst.NChannels, err = c.Int32("nchannels"); err != nil {
		return nil, err
	}
	if cnst.NRanges, err = c.Int32("nranges"); err != nil {
		return nil, err
	}
	if cnst.NSweeps, err = c.Int32("nsweeps"); err != nil {
		return nil, err
	}
	if cnst.IQIndicator, err = c.Int32("iqindicator"); err != nil {
		return nil, err
	}

	return cnst, nil
}

func (constantsHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	cnst, err := encodeAs[*Constants](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = appendInt32(dst, cnst.NChannels, engine)
	dst = appendInt32(dst, cnst.NRanges, engine)
	dst = appendInt32(dst, cnst.NSweeps, engine)

	return appendInt32(dst, cnst.IQIndicator, engine), nil
}

// swep

type sweepHandler struct{ leafBase }

func (sweepHandler) Code() format.FourCC { return format.CodeSwep }
func (sweepHandler) Kind() Kind          { return KindSweep }
func (sweepHandler) MinSize() int        { return SweepSize }

func (sweepHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < SweepSize {
		return nil, truncated(format.CodeSwep, len(payload), SweepSize)
	}
	r := newFieldReader(payload, engine)

	return &Sweep{
		SamplesPerSweep: r.int32(),
		SweepStart:      r.float64(),
		SweepBandwidth:  r.float64(),
		SweepRate:       r.float64(),
		RangeOffset:     r.int32(),
	}, nil
}

func (sweepHandler) Render(w *TextWriter, rec Record, _ *State) error {
	swep, err := recordAs[*Sweep](format.CodeSwep, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeSwep)
	w.Field("samplespersweep", strconv.FormatInt(int64(swep.SamplesPerSweep), 10))
	w.Field("sweepstart", FormatDouble(swep.SweepStart))
	w.Field("sweepbandwidth", FormatDouble(swep.SweepBandwidth))
	w.Field("sweeprate", FormatDouble(swep.SweepRate))
	w.Field("rangeoffset", strconv.FormatInt(int64(swep.RangeOffset), 10))
	w.End()

	return nil
}

func (sweepHandler) Parse(c *Cursor, _ *State) (Record, error) {
	var err error
	swep := &Sweep{}
	if swep.SamplesPerSweep, err = c.Int32("samplespersweep"); err != nil {
		return nil, err
	}
	if swep.SweepStart, err = c.Float64("sweepstart"); err != nil {
		return nil, err
	}
	if swep.SweepBandwidth, err = c.Float64("sweepbandwidth"); err != nil {
		return nil, err
	}
	if swep.SweepRate, err = c.Float64("sweeprate"); err != nil {
		return nil, err
	}
	if swep.RangeOffset, err = c.Int32("rangeoffset"); err != nil {
		return nil, err
	}

	return swep, nil
}

func (sweepHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	swep, err := encodeAs[*Sweep](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = appendInt32(dst, swep.SamplesPerSweep, engine)
	dst = appendFloat64(dst, swep.SweepStart, engine)
	dst = appendFloat64(dst, swep.SweepBandwidth, engine)
	dst = appendFloat64(dst, swep.SweepRate, engine)

	return appendInt32(dst, swep.RangeOffset, engine), nil
}

// fbin

type binFormatHandler struct{ leafBase }

func (binFormatHandler) Code() format.FourCC { return format.CodeFbin }
func (binFormatHandler) Kind() Kind          { return KindBinFormat }
func (binFormatHandler) MinSize() int        { return BinFormatSize }

func (binFormatHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < BinFormatSize {
		return nil, truncated(format.CodeFbin, len(payload), BinFormatSize)
	}
	r := newFieldReader(payload, engine)

	return &BinFormat{Format: r.fourCC(), Type: r.fourCC()}, nil
}

func (binFormatHandler) Render(w *TextWriter, rec Record, state *State) error {
	fbin, err := recordAs[*BinFormat](format.CodeFbin, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeFbin)
	w.Field("format", fbin.Format.String())
	w.Field("type", fbin.Type.String())
	w.End()
	state.Observe(fbin)

	return nil
}

func (binFormatHandler) Parse(c *Cursor, state *State) (Record, error) {
	var err error
	fbin := &BinFormat{}
	if fbin.Format, err = c.FourCC("format"); err != nil {
		return nil, err
	}
	if fbin.Type, err = c.FourCC("type"); err != nil {
		return nil, err
	}
	state.Observe(fbin)

	return fbin, nil
}

func (binFormatHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	fbin, err := encodeAs[*BinFormat](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = engine.AppendUint32(dst, uint32(fbin.Format))

	return engine.AppendUint32(dst, uint32(fbin.Type)), nil
}
