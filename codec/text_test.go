package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rsconv/block"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/testdata"
)

const smallText = "AQFT\n\nHEAD\n\nindx\nindex:3\n\nBODY\n\nrtag\nrtag:7\n\nEND \n\n"

func smallFile() []byte {
	return testdata.File(
		[][]byte{testdata.Leaf(format.CodeIndx, testdata.U32(3))},
		[][]byte{testdata.Leaf(format.CodeRtag, testdata.U32(7))},
	)
}

func TestTextEncoder_Small(t *testing.T) {
	seq, err := NewDecoder(quiet()).Decode(smallFile())
	require.NoError(t, err)

	text, err := NewTextEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, smallText, string(text))

	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(quiet()).EncodeTo(&buf, seq))
	require.Equal(t, smallText, buf.String())
}

func TestTextEncoder_HeaderOnly(t *testing.T) {
	seq, err := NewDecoder(quiet()).Decode(testdata.SampleFile())
	require.NoError(t, err)

	text, err := NewTextEncoder(quiet(), WithHeaderOnly(true)).Encode(seq)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(text), "fbin\nformat:cviq\ntype:flt4\n\n"))
	require.NotContains(t, string(text), "BODY")
	require.NotContains(t, string(text), "afft")
}

func TestTextEncoder_SamplesNeedFormat(t *testing.T) {
	data := testdata.File(nil, [][]byte{testdata.Leaf(format.CodeAfft, testdata.Samples(3, 1))})
	seq, err := NewDecoder(quiet()).Decode(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = NewTextEncoder(quiet()).EncodeTo(&buf, seq)
	require.True(t, errors.Is(err, errs.ErrUnsupportedSampleFormat))
	require.Zero(t, buf.Len())
}

func TestTextDecoder_Small(t *testing.T) {
	seq, err := NewTextDecoder(quiet()).Decode([]byte(smallText))
	require.NoError(t, err)
	require.Equal(t, []string{"AQFT", "HEAD", "indx", "BODY", "rtag", "END "}, codes(seq))
	require.Zero(t, seq[0].Size)
	require.Equal(t, uint32(4), seq[2].Size)

	require.NoError(t, block.Reconcile(seq))
	out, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Equal(t, smallFile(), out)
}

func TestTextDecoder_Reader(t *testing.T) {
	seq, err := NewTextDecoder(quiet()).DecodeReader(strings.NewReader(strings.ReplaceAll(smallText, "\n", "\r\n")))
	require.NoError(t, err)
	require.Len(t, seq, 6)
}

func TestTextDecoder_Errors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target error
		msg    string
	}{
		{"unknown code", "AQFT\n\nABCD\nint32:7\n\n", errs.ErrNoHandler, "line 3"},
		{"missing field", "AQFT\n\nrtag\nbogus:1\n\nrtag:2\n", errs.ErrMissingParameter, "'rtag' block starting at line 3"},
		{"bad value", "AQFT\n\ncnst\nnchannels:x\n\n", errs.ErrInvalidParameter, "nchannels"},
		{"bad value line", "AQFT\n\ncnst\nnranges:1\nnchannels:x\n\n", errs.ErrInvalidParameter, "nchannels:x at line 5"},
		{"sample lines", "fbin\nformat:cviq\ntype:flt4\n\nafft\n  0 1 1\n  1 1 1\n\n", errs.ErrSampleLineCount, "'afft'"},
		{"sample format", "afft\n  0 1 1\n  1 1 1\n  2 1 1\n\n", errs.ErrUnsupportedSampleFormat, "cannot handle format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextDecoder(quiet()).Decode([]byte(tt.text))
			require.True(t, errors.Is(err, tt.target), "got %v", err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestTextDecoder_IntScenario(t *testing.T) {
	seq, err := NewTextDecoder(quiet()).Decode([]byte("AQFT\n\nHEAD\n\nindx\nindex:7\n\nBODY\n\nrtag\nrtag:7\n\nEND \n\n"))
	require.NoError(t, err)
	require.NoError(t, block.Reconcile(seq))

	data, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)

	back, err := NewDecoder(quiet()).Decode(data)
	require.NoError(t, err)
	require.Equal(t, uint32(7), back[2].Record.(*block.Index).Index)
	require.Equal(t, uint32(7), back[4].Record.(*block.ReceiverTag).Tag)
}

func TestTextDecoder_RootSizeScenario(t *testing.T) {
	text := "AQFT\n\nHEAD\n\ndbrf\nrxloss:1\n\nBODY\n\nrtag\nrtag:1\n\nrtag\nrtag:2\n\nEND \n\n"

	seq, err := NewTextDecoder(quiet()).Decode([]byte(text))
	require.NoError(t, err)
	require.NoError(t, block.Reconcile(seq))
	require.Equal(t, uint32(16), seq[1].Size)
	require.Equal(t, uint32(24), seq[3].Size)
	require.Equal(t, uint32(56), seq[0].Size)

	data, err := NewEncoder(quiet()).Encode(seq)
	require.NoError(t, err)
	require.Len(t, data, 8+56+8)
	require.Equal(t, testdata.Header(format.CodeAQFT, 56), data[:8])
}
