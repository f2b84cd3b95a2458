package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/log"
	"github.com/arloliu/rsconv/internal/testdata"
)

func quiet() Option {
	return WithLogger(log.Discard())
}

func capture() (*bytes.Buffer, Option) {
	var buf bytes.Buffer
	return &buf, WithLogger(log.New(&buf, "debug"))
}

func codes(seq block.Sequence) []string {
	out := make([]string, len(seq))
	for i := range seq {
		out[i] = seq[i].Code.String()
	}

	return out
}

func TestDecoder_SampleFile(t *testing.T) {
	seq, err := NewDecoder(quiet()).Decode(testdata.SampleFile())
	require.NoError(t, err)

	require.Equal(t, []string{
		"AQFT", "HEAD", "sign", "mcda", "dbrf", "cnst", "hasi", "swep", "fbin",
		"BODY", "rtag", "gps1", "indx", "scal", "afft", "ifft", "indx", "afft",
		"END ",
	}, codes(seq))

	sizes, err := block.RegionSizes(seq)
	require.NoError(t, err)
	require.Equal(t, sizes.Root, seq[0].Size)
	require.Equal(t, sizes.Head, seq[1].Size)
	require.Equal(t, sizes.Body, seq[9].Size)

	sign := seq[2].Record.(*block.Signature)
	require.Equal(t, "RSer", sign.FileType.String())
	require.Equal(t, uint32(0x102), sign.UserFlags)

	require.Equal(t, uint32(3786825600), seq[3].Record.(*block.FileTime).Stored)
	require.Equal(t, &block.Constants{NChannels: 3, NRanges: 2, NSweeps: 512, IQIndicator: 1}, seq[5].Record)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}, seq[6].Record.(*block.Opaque).Data)
	require.Equal(t, format.BinFormatCVIQ, seq[8].Record.(*block.BinFormat).Format)
	require.Equal(t, uint32(7), seq[10].Record.(*block.ReceiverTag).Tag)
	require.Len(t, seq[15].Record.(*block.Samples).Pairs, 6)
	require.Equal(t, block.KindInterleavedSamples, seq[15].Record.Kind())

	for _, blk := range seq {
		if !blk.IsContainer() {
			require.Len(t, blk.Payload, int(blk.Size))
		}
	}
}

func TestDecoder_RootValidation(t *testing.T) {
	_, err := NewDecoder(quiet()).Decode([]byte("AQFT\x00"))
	require.True(t, errors.Is(err, errs.ErrInvalidHeaderSize))

	_, err = NewDecoder(quiet()).Decode(nil)
	require.True(t, errors.Is(err, errs.ErrInvalidHeaderSize))

	_, err = NewDecoder(quiet()).Decode(testdata.Container(format.CodeHEAD))
	require.True(t, errors.Is(err, errs.ErrBadRootKey))
	require.Contains(t, err.Error(), "'HEAD'")
}

func TestDecoder_ClampsOversizedBlocks(t *testing.T) {
	logs, logOpt := capture()

	data := append(testdata.Header(format.CodeAQFT, 1000), testdata.Header(format.CodeRtag, 100)...)
	data = append(data, testdata.U32(7)...)

	seq, err := NewDecoder(logOpt).Decode(data)
	require.NoError(t, err)
	require.Len(t, seq, 2)
	require.Equal(t, uint32(12), seq[0].Size)
	require.Equal(t, uint32(4), seq[1].Size)
	require.Len(t, seq[1].Payload, 4)
	require.Equal(t, uint32(7), seq[1].Record.(*block.ReceiverTag).Tag)
	require.Contains(t, logs.String(), "block size truncated")
}

func TestDecoder_UndersizedLeaf(t *testing.T) {
	logs, logOpt := capture()

	data := testdata.Container(format.CodeAQFT, testdata.Leaf(format.CodeDbrf, testdata.U32(1)))
	seq, err := NewDecoder(logOpt).Decode(data)
	require.NoError(t, err)
	require.Len(t, seq, 2)
	require.Nil(t, seq[1].Record)
	require.Equal(t, []byte{0, 0, 0, 1}, seq[1].Payload)
	require.Contains(t, logs.String(), "block is truncated")

	_, err = NewTextEncoder(quiet()).Encode(seq)
	require.True(t, errors.Is(err, errs.ErrTruncatedBlock))
}

func TestDecoder_PartialHeader(t *testing.T) {
	logs, logOpt := capture()

	data := append(testdata.Header(format.CodeAQFT, 3), 'r', 't', 'a')
	seq, err := NewDecoder(logOpt).Decode(data)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	require.Contains(t, logs.String(), "partial block header")
}

func TestDecoder_UnknownCode(t *testing.T) {
	data := testdata.Container(format.CodeAQFT,
		testdata.Leaf(format.CodeRtag, testdata.U32(1)),
		testdata.Leaf(format.ParseFourCC("ABCD"), testdata.I32(7)),
	)

	_, err := NewDecoder(quiet()).Decode(data)
	require.True(t, errors.Is(err, errs.ErrNoHandler))
	require.Contains(t, err.Error(), "'ABCD'")
	require.Contains(t, err.Error(), "offset 20")
}

func TestDecoder_TrailingBytes(t *testing.T) {
	data := testdata.Container(format.CodeAQFT, testdata.Leaf(format.CodeRtag, testdata.U32(7), testdata.U32(9)))

	logs, logOpt := capture()
	seq, err := NewDecoder(logOpt).Decode(data)
	require.NoError(t, err)
	require.Equal(t, uint32(8), seq[1].Size)
	require.Equal(t, uint32(4), seq[1].Record.Size())
	require.Equal(t, testdata.U32(9), seq[1].Trailing)
	require.Equal(t, uint32(8), seq[1].LeafSize())
	require.Contains(t, logs.String(), "trailing bytes kept")

	_, err = NewDecoder(quiet(), WithStrictTrailing(true)).Decode(data)
	require.True(t, errors.Is(err, errs.ErrTrailingBytes))
}

func TestDecoder_LittleEndianEngine(t *testing.T) {
	seq, err := NewDecoder(quiet()).Decode(testdata.SampleFile())
	require.NoError(t, err)

	le, err := NewEncoder(quiet(), WithEngine(binary.LittleEndian)).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, []byte{'T', 'F', 'Q', 'A'}, le[:4])

	back, err := NewDecoder(quiet(), WithEngine(binary.LittleEndian)).Decode(le)
	require.NoError(t, err)
	require.Equal(t, codes(seq), codes(back))
	require.Equal(t, seq[5].Record, back[5].Record)
}
