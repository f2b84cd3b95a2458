package block

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

func TestSampleLine(t *testing.T) {
	require.Equal(t, "  0  1.5 -0.25", SampleLine(0, IQ{I: 1.5, Q: -0.25}))
	require.Equal(t, " 12  0  0", SampleLine(12, IQ{}))
	require.Equal(t, "1234 -1  100000", SampleLine(1234, IQ{I: -1, Q: 1e5}))
	require.Equal(t, " 0.1", FormatSample(0.1))
}

func TestSamples_Render(t *testing.T) {
	h, err := Lookup(format.CodeAfft)
	require.NoError(t, err)

	rec := NewSamples(KindAntennaSamples, []IQ{{I: 1, Q: -1}, {I: 0.5, Q: 2}})
	w := NewTextWriter(nil)
	require.NoError(t, h.Render(w, rec, sampleState()))
	require.Equal(t, "afft\n  0  1 -1\n  1  0.5  2\n\n", string(w.Bytes()))

	err = h.Render(NewTextWriter(nil), rec, &State{})
	require.True(t, errors.Is(err, errs.ErrUnsupportedSampleFormat))
}

func TestSamples_ParseLineCount(t *testing.T) {
	h, err := Lookup(format.CodeIfft)
	require.NoError(t, err)

	tests := []struct {
		name  string
		lines int
		ok    bool
	}{
		{"empty", 0, false},
		{"one", 1, false},
		{"two", 2, false},
		{"three", 3, true},
		{"four", 4, false},
		{"six", 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			b.WriteString("ifft\n")
			for i := 0; i < tt.lines; i++ {
				b.WriteString(SampleLine(i, IQ{I: float32(i), Q: -float32(i)}) + "\n")
			}
			b.WriteString("\nEND \n\n")

			c := NewCursor(b.String())
			_, _, _ = c.NextRecord()
			rec, err := h.Parse(c, sampleState())
			if !tt.ok {
				require.True(t, errors.Is(err, errs.ErrSampleLineCount))
				return
			}
			require.NoError(t, err)
			require.Len(t, rec.(*Samples).Pairs, tt.lines)
			require.Equal(t, KindInterleavedSamples, rec.Kind())

			code, _, ok := c.NextRecord()
			require.True(t, ok)
			require.Equal(t, format.CodeEND, code)
		})
	}
}

func TestSamples_ParseMalformedLine(t *testing.T) {
	h, err := Lookup(format.CodeAfft)
	require.NoError(t, err)

	c := NewCursor("afft\n  0 1 2\n  1 x 2\n  2 1 2\n\n")
	_, _, _ = c.NextRecord()
	_, err = h.Parse(c, sampleState())
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))
	require.Contains(t, err.Error(), "line 3")

	c = NewCursor("afft\n  0 1 2\n  1 2\n  2 1 2\n\n")
	_, _, _ = c.NextRecord()
	_, err = h.Parse(c, sampleState())
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))

	c = NewCursor("afft\n  0 1 2\n  1 1 2\n  2 1 2\n\n")
	_, _, _ = c.NextRecord()
	_, err = h.Parse(c, &State{BinFormat: format.BinFormatCVIQ, BinType: format.BinTypeFLT8})
	require.True(t, errors.Is(err, errs.ErrUnsupportedSampleFormat))
}

func TestSamples_FixupIgnoresPartialPair(t *testing.T) {
	h, err := Lookup(format.CodeAfft)
	require.NoError(t, err)

	payload := []byte{0x3f, 0x80, 0, 0, 0xbf, 0x80, 0, 0, 0xff, 0xff}
	rec, err := h.Fixup(payload, endian.GetWireEngine())
	require.NoError(t, err)
	require.Equal(t, []IQ{{I: 1, Q: -1}}, rec.(*Samples).Pairs)
	require.Equal(t, uint32(8), rec.Size())
}
