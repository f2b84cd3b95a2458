package block

import (
	"strconv"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/format"
)

// rtag

type receiverTagHandler struct{ leafBase }

func (receiverTagHandler) Code() format.FourCC { return format.CodeRtag }
func (receiverTagHandler) Kind() Kind          { return KindReceiverTag }
func (receiverTagHandler) MinSize() int        { return ReceiverTagSize }

func (receiverTagHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < ReceiverTagSize {
		return nil, truncated(format.CodeRtag, len(payload), ReceiverTagSize)
	}

	return &ReceiverTag{Tag: engine.Uint32(payload)}, nil
}

func (receiverTagHandler) Render(w *TextWriter, rec Record, _ *State) error {
	rtag, err := recordAs[*ReceiverTag](format.CodeRtag, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeRtag)
	w.Field("rtag", strconv.FormatUint(uint64(rtag.Tag), 10))
	w.End()

	return nil
}

func (receiverTagHandler) Parse(c *Cursor, _ *State) (Record, error) {
	v, err := c.Uint32("rtag")
	if err != nil {
		return nil, err
	}

	return &ReceiverTag{Tag: v}, nil
}

func (receiverTagHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	rtag, err := encodeAs[*ReceiverTag](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)

	return engine.AppendUint32(dst, rtag.Tag), nil
}

// gps1

type gpsHandler struct{ leafBase }

func (gpsHandler) Code() format.FourCC { return format.CodeGps1 }
func (gpsHandler) Kind() Kind          { return KindGPS }
func (gpsHandler) MinSize() int        { return GPSSize }

func (gpsHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < GPSSize {
		return nil, truncated(format.CodeGps1, len(payload), GPSSize)
	}
	r := newFieldReader(payload, engine)

	return &GPS{
		Lat:    r.float64(),
		Lon:    r.float64(),
		Alt:    r.float64(),
		Stored: r.uint32(),
	}, nil
}

func (gpsHandler) Render(w *TextWriter, rec Record, _ *State) error {
	gps, err := recordAs[*GPS](format.CodeGps1, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeGps1)
	w.Field("lat", FormatDouble(gps.Lat))
	w.Field("lon", FormatDouble(gps.Lon))
	w.Field("alt", FormatDouble(gps.Alt))
	w.Field("gpstimestamp", FormatLegacyTime(gps.Stored))
	w.End()

	return nil
}

func (gpsHandler) Parse(c *Cursor, _ *State) (Record, error) {
	var err error
	gps := &GPS{}
	if gps.Lat, err = c.Float64("lat"); err != nil {
		return nil, err
	}
	if gps.Lon, err = c.Float64("lon"); err != nil {
		return nil, err
	}
	if gps.Alt, err = c.Float64("alt"); err != nil {
		return nil, err
	}
	if gps.Stored, err = c.LegacyTime("gpstimestamp"); err != nil {
		return nil, err
	}

	return gps, nil
}

func (gpsHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	gps, err := encodeAs[*GPS](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = appendFloat64(dst, gps.Lat, engine)
	dst = appendFloat64(dst, gps.Lon, engine)
	dst = appendFloat64(dst, gps.Alt, engine)

	return engine.AppendUint32(dst, gps.Stored), nil
}

// indx

type indexHandler struct{ leafBase }

func (indexHandler) Code() format.FourCC { return format.CodeIndx }
func (indexHandler) Kind() Kind          { return KindIndex }
func (indexHandler) MinSize() int        { return IndexSize }

func (indexHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < IndexSize {
		return nil, truncated(format.CodeIndx, len(payload), IndexSize)
	}

	return &Index{Index: engine.Uint32(payload)}, nil
}

func (indexHandler) Render(w *TextWriter, rec Record, state *State) error {
	indx, err := recordAs[*Index](format.CodeIndx, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeIndx)
	w.Field("index", strconv.FormatUint(uint64(indx.Index), 10))
	w.End()
	state.Observe(indx)

	return nil
}

func (indexHandler) Parse(c *Cursor, state *State) (Record, error) {
	v, err := c.Uint32("index")
	if err != nil {
		return nil, err
	}
	indx := &Index{Index: v}
	state.Observe(indx)

	return indx, nil
}

func (indexHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	indx, err := encodeAs[*Index](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)

	return engine.AppendUint32(dst, indx.Index), nil
}

// scal

type scalingHandler struct{ leafBase }

func (scalingHandler) Code() format.FourCC { return format.CodeScal }
func (scalingHandler) Kind() Kind          { return KindScaling }
func (scalingHandler) MinSize() int        { return ScalingSize }

func (scalingHandler) Fixup(payload []byte, engine endian.EndianEngine) (Record, error) {
	if len(payload) < ScalingSize {
		return nil, truncated(format.CodeScal, len(payload), ScalingSize)
	}
	r := newFieldReader(payload, engine)

	return &Scaling{ScalarOne: r.float64(), ScalarTwo: r.float64()}, nil
}

func (scalingHandler) Render(w *TextWriter, rec Record, state *State) error {
	scal, err := recordAs[*Scaling](format.CodeScal, rec)
	if err != nil {
		return err
	}
	w.Code(format.CodeScal)
	w.Field("scalar_one", FormatDouble(scal.ScalarOne))
	w.Field("scalar_two", FormatDouble(scal.ScalarTwo))
	w.End()
	state.Observe(scal)

	return nil
}

func (scalingHandler) Parse(c *Cursor, state *State) (Record, error) {
	var err error
	scal := &Scaling{}
	if scal.ScalarOne, err = c.Float64("scalar_one"); err != nil {
		return nil, err
	}
	if scal.ScalarTwo, err = c.Float64("scalar_two"); err != nil {
		return nil, err
	}
	state.Observe(scal)

	return scal, nil
}

func (scalingHandler) Encode(dst []byte, blk *Block, engine endian.EndianEngine) ([]byte, error) {
	scal, err := encodeAs[*Scaling](blk)
	if err != nil {
		return dst, err
	}
	dst = appendLeafHeader(dst, blk, engine)
	dst = appendFloat64(dst, scal.ScalarOne, engine)

	return appendFloat64(dst, scal.ScalarTwo, engine), nil
}
