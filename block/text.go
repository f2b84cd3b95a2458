package block

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
)

// TextWriter appends the line-oriented rendering of blocks to a buffer.
type TextWriter struct {
	buf []byte
}

// NewTextWriter creates a writer appending to buf.
func NewTextWriter(buf []byte) *TextWriter {
	return &TextWriter{buf: buf}
}

// Bytes returns the rendered text.
func (w *TextWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of rendered bytes.
func (w *TextWriter) Len() int {
	return len(w.buf)
}

// Code writes the type code line that opens a record.
func (w *TextWriter) Code(code format.FourCC) {
	b := code.Bytes()
	w.buf = append(w.buf, b[:]...)
	w.buf = append(w.buf, '\n')
}

// Field writes a name:value line.
func (w *TextWriter) Field(name, value string) {
	w.buf = append(w.buf, name...)
	w.buf = append(w.buf, ':')
	w.buf = append(w.buf, value...)
	w.buf = append(w.buf, '\n')
}

// Line writes a raw line.
func (w *TextWriter) Line(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '\n')
}

// End writes the blank line that terminates a record.
func (w *TextWriter) End() {
	w.buf = append(w.buf, '\n')
}

// FormatDouble renders a float64 in fixed notation with the fewest digits
// that parse back to the same value.
func FormatDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSample renders a float32 in fixed notation with the fewest digits
// that parse back to the same value, prefixed with a space when non-negative.
func FormatSample(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !math.Signbit(float64(v)) && s[0] != '+' {
		return " " + s
	}

	return s
}

// FormatLegacyTime renders a stored 1904-based timestamp as Unix seconds
// followed by a human readable UTC date.
func FormatLegacyTime(stored uint32) string {
	return strconv.FormatInt(LegacyToUnix(stored), 10) +
		" (NB: seconds since 1970) (" + LegacyTime(stored).Format(legacyDateLayout) + ")"
}

// Cursor walks the lines of a text rendering.
//
// The top-level scan uses NextRecord to find type code lines. Handlers then
// look up their fields with Field, which searches from the first line after
// the code line up to the next blank line, so fields may appear in any
// order and unknown lines inside a record are ignored.
type Cursor struct {
	lines []string
	pos   int // index of the next unread line
	start int // index of the first line of the current record body
}

// NewCursor splits text into lines. Trailing carriage returns are dropped.
func NewCursor(text string) *Cursor {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return &Cursor{lines: lines}
}

// ReadCursor reads all lines from r.
func ReadCursor(r io.Reader) (*Cursor, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read text")
	}

	return &Cursor{lines: lines}, nil
}

// Lines returns the total number of lines.
func (c *Cursor) Lines() int {
	return len(c.lines)
}

// NextRecord advances to the next line that names a type code. Lines of at
// most one character and lines containing ':' are skipped. It returns the
// code and the 1-based number of the code line; ok is false at the end of
// the text.
func (c *Cursor) NextRecord() (code format.FourCC, lineNo int, ok bool) {
	for c.pos < len(c.lines) {
		line := c.lines[c.pos]
		c.pos++
		if len(line) <= 1 || strings.IndexByte(line, ':') >= 0 {
			continue
		}
		c.start = c.pos

		return format.ParseFourCC(line), c.pos, true
	}

	return 0, len(c.lines), false
}

// Field returns the value of the name:value line for name in the current
// record. It fails with ErrMissingParameter when a blank line or the end of
// the text is reached first.
func (c *Cursor) Field(name string) (string, error) {
	v, _, err := c.field(name)
	return v, err
}

// field is Field that also returns the 1-based number of the matched line.
func (c *Cursor) field(name string) (string, int, error) {
	prefix := name + ":"
	i := c.start
	for ; i < len(c.lines); i++ {
		line := c.lines[i]
		if line == "" {
			break
		}
		if strings.HasPrefix(line, prefix) {
			return line[len(prefix):], i + 1, nil
		}
	}

	return "", 0, errors.Wrapf(errs.ErrMissingParameter, "%q at line %d", name, i+1)
}

// RecordLines returns the non-blank lines of the current record body.
func (c *Cursor) RecordLines() []string {
	end := c.start
	for end < len(c.lines) && c.lines[end] != "" {
		end++
	}

	return c.lines[c.start:end]
}

// LineNo returns the 1-based number of the i-th line of the current record body.
func (c *Cursor) LineNo(i int) int {
	return c.start + i + 1
}

// Consume marks n lines of the current record body as read, so the
// top-level scan does not see them again.
func (c *Cursor) Consume(n int) {
	if c.start+n > c.pos {
		c.pos = min(c.start+n, len(c.lines))
	}
}

func invalid(name, value string, lineNo int, err error) error {
	return errors.Wrapf(errs.ErrInvalidParameter, "%s:%s at line %d: %v", name, value, lineNo, err)
}

// Uint32 parses a decimal unsigned field.
func (c *Cursor) Uint32(name string) (uint32, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, invalid(name, v, line, err)
	}

	return uint32(n), nil
}

// Int32 parses a decimal signed field.
func (c *Cursor) Int32(name string) (int32, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, invalid(name, v, line, err)
	}

	return int32(n), nil
}

// Hex32 parses a hexadecimal field, with or without a 0x prefix.
func (c *Cursor) Hex32(name string) (uint32, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(v)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, invalid(name, v, line, err)
	}

	return uint32(n), nil
}

// Float64 parses a floating point field.
func (c *Cursor) Float64(name string) (float64, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, invalid(name, v, line, err)
	}

	return f, nil
}

// RawFourCC takes the first four bytes of the value verbatim, padding short
// values with spaces.
func (c *Cursor) RawFourCC(name string) (format.FourCC, error) {
	v, err := c.Field(name)
	if err != nil {
		return 0, err
	}

	return format.ParseFourCC(v), nil
}

// FourCC takes the first whitespace separated token of the value, padding
// short tokens with spaces.
func (c *Cursor) FourCC(name string) (format.FourCC, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	tok := strings.Fields(v)
	if len(tok) == 0 {
		return 0, invalid(name, v, line, errors.New("empty code"))
	}

	return format.ParseFourCC(tok[0]), nil
}

// Text copies the value into dst, truncating or zero padding it.
func (c *Cursor) Text(name string, dst []byte) error {
	v, err := c.Field(name)
	if err != nil {
		return err
	}
	n := copy(dst, v)
	clear(dst[n:])

	return nil
}

// LegacyTime parses a timestamp rendered by FormatLegacyTime. Only the
// leading Unix seconds are used; the date comment is ignored.
func (c *Cursor) LegacyTime(name string) (uint32, error) {
	v, line, err := c.field(name)
	if err != nil {
		return 0, err
	}
	tok := strings.Fields(v)
	if len(tok) == 0 {
		return 0, invalid(name, v, line, errors.New("empty timestamp"))
	}
	unix, err := strconv.ParseInt(tok[0], 10, 64)
	if err != nil {
		return 0, invalid(name, v, line, err)
	}

	return UnixToLegacy(unix), nil
}
