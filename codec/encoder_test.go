package codec

import (
	"bytes"
	"errors"
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/testdata"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncoder_BinaryIdentity(t *testing.T) {
	data := testdata.SampleFile()

	seq, err := NewDecoder(quiet()).Decode(data)
	require.NoError(t, err)

	out, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, data, out)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(quiet()).EncodeTo(&buf, seq))
	require.Equal(t, data, buf.Bytes())
}

func TestEncoder_NothingWrittenOnError(t *testing.T) {
	seq := block.Sequence{
		{Code: format.CodeAQFT, Size: 12},
		{Code: format.CodeRtag, Size: 4, Record: &block.ReceiverTag{Tag: 1}},
		{Code: format.CodeDbrf, Size: 4},
	}

	var buf bytes.Buffer
	err := NewEncoder(quiet()).EncodeTo(&buf, seq)
	require.True(t, cerrors.Is(err, errs.ErrMissingRecord))
	require.Contains(t, err.Error(), "block 2")
	require.Zero(t, buf.Len())

	seq[2] = block.Block{Code: format.ParseFourCC("ABCD")}
	err = NewEncoder(quiet()).EncodeTo(&buf, seq)
	require.True(t, cerrors.Is(err, errs.ErrNoHandler))
	require.Zero(t, buf.Len())
}

func TestEncoder_WriteFailure(t *testing.T) {
	seq, err := NewDecoder(quiet()).Decode(testdata.SampleFile())
	require.NoError(t, err)

	err = NewEncoder(quiet()).EncodeTo(failingWriter{}, seq)
	require.ErrorContains(t, err, "disk full")
}

func TestEncoder_LeafSizeFromRecord(t *testing.T) {
	seq := block.Sequence{
		{Code: format.CodeAQFT, Size: 12},
		{Code: format.CodeRtag, Size: 999, Record: &block.ReceiverTag{Tag: 7}},
	}

	out, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, testdata.Container(format.CodeAQFT, testdata.Leaf(format.CodeRtag, testdata.U32(7))), out)
}

func TestEncoder_KeepsTrailingBytes(t *testing.T) {
	data := testdata.File(testdata.HeadBlocks(), [][]byte{
		testdata.Leaf(format.CodeRtag, testdata.U32(7), []byte{0xaa, 0xbb}),
		testdata.Leaf(format.CodeAfft, testdata.Samples(1, 0.5), []byte{1, 2, 3, 4}),
	})

	seq, err := NewDecoder(quiet()).Decode(data)
	require.NoError(t, err)

	out, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, data, out)
}
