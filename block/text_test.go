package block

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

func TestCursor_NextRecord(t *testing.T) {
	c := NewCursor("\r\nAQFT\r\n\r\nx\nstray:line\nEND\nrtag\nrtag:1\n\n")

	code, line, ok := c.NextRecord()
	require.True(t, ok)
	require.Equal(t, format.CodeAQFT, code)
	require.Equal(t, 2, line)

	code, line, ok = c.NextRecord()
	require.True(t, ok)
	require.Equal(t, format.CodeEND, code, "short codes are padded with spaces")
	require.Equal(t, 6, line)

	code, _, ok = c.NextRecord()
	require.True(t, ok)
	require.Equal(t, format.CodeRtag, code)

	_, _, ok = c.NextRecord()
	require.False(t, ok)
}

func TestCursor_Field(t *testing.T) {
	c := NewCursor("cnst\nnranges:5\nnchannels:3\nbogus\n\nnsweeps:9\n")
	_, _, ok := c.NextRecord()
	require.True(t, ok)

	v, err := c.Int32("nchannels")
	require.NoError(t, err)
	require.Equal(t, int32(3), v)

	v, err = c.Int32("nranges")
	require.NoError(t, err)
	require.Equal(t, int32(5), v)

	_, err = c.Int32("nsweeps")
	require.True(t, errors.Is(err, errs.ErrMissingParameter), "search stops at the blank line")
	require.Contains(t, err.Error(), `"nsweeps" at line 5`)
}

func TestCursor_FieldAtEOF(t *testing.T) {
	c := NewCursor("indx\nrtag:1")
	_, _, _ = c.NextRecord()

	_, err := c.Uint32("index")
	require.True(t, errors.Is(err, errs.ErrMissingParameter))
	require.Contains(t, err.Error(), "line 3")
}

func TestCursor_LabelsAreExact(t *testing.T) {
	c := NewCursor("fbin\nfiletype:RSer\ntype:flt4\nformat:cviq\n\n")
	_, _, _ = c.NextRecord()

	typ, err := c.FourCC("type")
	require.NoError(t, err)
	require.Equal(t, format.BinTypeFLT4, typ)

	f, err := c.FourCC("format")
	require.NoError(t, err)
	require.Equal(t, format.BinFormatCVIQ, f)
}

func TestCursor_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		text string
		read func(c *Cursor) error
	}{
		{"uint", "xxxx\nv:-1\n", func(c *Cursor) error { _, err := c.Uint32("v"); return err }},
		{"uint overflow", "xxxx\nv:4294967296\n", func(c *Cursor) error { _, err := c.Uint32("v"); return err }},
		{"int", "xxxx\nv:abc\n", func(c *Cursor) error { _, err := c.Int32("v"); return err }},
		{"hex", "xxxx\nv:xyz\n", func(c *Cursor) error { _, err := c.Hex32("v"); return err }},
		{"float", "xxxx\nv:1.2.3\n", func(c *Cursor) error { _, err := c.Float64("v"); return err }},
		{"code", "xxxx\nv:   \n", func(c *Cursor) error { _, err := c.FourCC("v"); return err }},
		{"time", "xxxx\nv:soon\n", func(c *Cursor) error { _, err := c.LegacyTime("v"); return err }},
		{"empty time", "xxxx\nv:\n", func(c *Cursor) error { _, err := c.LegacyTime("v"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.text)
			_, _, ok := c.NextRecord()
			require.True(t, ok)
			require.True(t, errors.Is(tt.read(c), errs.ErrInvalidParameter))
		})
	}
}

func TestCursor_InvalidValueLine(t *testing.T) {
	c := NewCursor("\nswep\nsweeprate:1\nsamplespersweep:many\n\n")
	_, _, ok := c.NextRecord()
	require.True(t, ok)

	_, err := c.Int32("samplespersweep")
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))
	require.Contains(t, err.Error(), "samplespersweep:many at line 4")

	c = NewCursor("hasi\ndata: 0a zz\n\n")
	_, _, _ = c.NextRecord()
	h, err := Lookup(format.CodeHasi)
	require.NoError(t, err)
	_, err = h.Parse(c, &State{})
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))
	require.Contains(t, err.Error(), "data:zz at line 2")
}

func TestCursor_LegacyTimeIgnoresComment(t *testing.T) {
	c := NewCursor("mcda\nfiletimestamp:100 (NB: seconds since 1970) (whatever)\n")
	_, _, _ = c.NextRecord()

	v, err := c.LegacyTime("filetimestamp")
	require.NoError(t, err)
	require.Equal(t, uint32(LegacyEpochOffset+100), v)
}

func TestReadCursor(t *testing.T) {
	c, err := ReadCursor(strings.NewReader("AQFT\n\nHEAD\n\n"))
	require.NoError(t, err)
	require.Equal(t, 4, c.Lines())

	code, _, ok := c.NextRecord()
	require.True(t, ok)
	require.Equal(t, format.CodeAQFT, code)
}

func TestTextWriter(t *testing.T) {
	w := NewTextWriter(make([]byte, 0, 16))
	w.Code(format.CodeScal)
	w.Field("scalar_one", FormatDouble(0.5))
	w.Line("raw")
	w.End()

	require.Equal(t, "scal\nscalar_one:0.5\nraw\n\n", string(w.Bytes()))
	require.Equal(t, len(w.Bytes()), w.Len())
	require.Equal(t, "100000000000000000000", FormatDouble(1e20))
}
