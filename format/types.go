package format

import "strings"

type (
	// FourCC is a four byte type code. The value is the big-endian
	// interpretation of the four wire bytes, so FourCC("AQFT") == 0x41514654
	// on every host.
	FourCC uint32

	CompressionType uint8
)

// Block type codes.
const (
	CodeAQFT FourCC = 0x41514654 // CodeAQFT is the root container, "AQFT".
	CodeHEAD FourCC = 0x48454144 // CodeHEAD opens the metadata region, "HEAD".
	CodeBODY FourCC = 0x424f4459 // CodeBODY opens the samples region, "BODY".
	CodeEND  FourCC = 0x454e4420 // CodeEND terminates the body region, "END ".

	CodeSign FourCC = 0x7369676e // CodeSign is the file signature, "sign".
	CodeMcda FourCC = 0x6d636461 // CodeMcda is the file timestamp, "mcda".
	CodeDbrf FourCC = 0x64627266 // CodeDbrf is the receiver loss correction, "dbrf".
	CodeCnst FourCC = 0x636e7374 // CodeCnst holds the channel/range/sweep counts, "cnst".
	CodeHasi FourCC = 0x68617369 // CodeHasi is undocumented and kept as raw bytes, "hasi".
	CodeSwep FourCC = 0x73776570 // CodeSwep describes the sweep, "swep".
	CodeFbin FourCC = 0x6662696e // CodeFbin declares the sample format, "fbin".
	CodeRtag FourCC = 0x72746167 // CodeRtag is the receiver tag, "rtag".
	CodeGps1 FourCC = 0x67707331 // CodeGps1 is the GPS fix, "gps1".
	CodeIndx FourCC = 0x696e6478 // CodeIndx is the range cell index, "indx".
	CodeScal FourCC = 0x7363616c // CodeScal holds the I/Q scaling values, "scal".
	CodeAfft FourCC = 0x61666674 // CodeAfft holds I/Q samples, "afft".
	CodeIfft FourCC = 0x69666674 // CodeIfft holds I/Q samples, "ifft".
)

// Sample format codes declared by the fbin block.
const (
	BinFormatCVIQ FourCC = 0x63766971 // "cviq"
	BinFormatDBRA FourCC = 0x64627261 // "dbra"

	BinTypeFLT8 FourCC = 0x666c7438 // "flt8"
	BinTypeFLT4 FourCC = 0x666c7434 // "flt4"
	BinTypeFIX2 FourCC = 0x66697832 // "fix2"
	BinTypeFIX3 FourCC = 0x66697833 // "fix3"
	BinTypeFIX4 FourCC = 0x66697834 // "fix4"
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// MakeFourCC builds a FourCC from its four wire bytes.
func MakeFourCC(b [4]byte) FourCC {
	return FourCC(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// ParseFourCC builds a FourCC from the first four bytes of s.
// Shorter strings are padded with spaces, so "END" becomes "END ".
func ParseFourCC(s string) FourCC {
	var b [4]byte
	for i := range b {
		if i < len(s) {
			b[i] = s[i]
		} else {
			b[i] = ' '
		}
	}

	return MakeFourCC(b)
}

// Bytes returns the four wire bytes of the code.
func (c FourCC) Bytes() [4]byte {
	return [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}

func (c FourCC) String() string {
	b := c.Bytes()
	return string(b[:])
}

// Printable reports whether all four bytes are printable ASCII.
func (c FourCC) Printable() bool {
	for _, ch := range c.Bytes() {
		if ch < 0x20 || ch > 0x7e {
			return false
		}
	}

	return true
}

// Quote returns the code as a quoted string, falling back to hex for
// codes with unprintable bytes.
func (c FourCC) Quote() string {
	if c.Printable() {
		return "'" + c.String() + "'"
	}

	return "0x" + strings.ToLower(hex32(uint32(c)))
}

func hex32(v uint32) string {
	const digits = "0123456789ABCDEF"
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}

	return string(b[:])
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a user-facing name ("none", "zstd", "s2", "lz4")
// to a CompressionType. The boolean is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
