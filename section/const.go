package section

import "github.com/arloliu/rsconv/format"

const (
	HeaderSize = 8 // block header size in bytes: 4-byte type code + 4-byte payload size
	CodeOffset = 0 // byte offset of the type code inside the header
	SizeOffset = 4 // byte offset of the payload size inside the header
)

// Sentinel codes delimiting container regions in a flat block sequence.
const (
	RootCode       = format.CodeAQFT
	HeadCode       = format.CodeHEAD
	BodyCode       = format.CodeBODY
	TerminatorCode = format.CodeEND
)

// IsSentinel reports whether code is one of the four container sentinels.
func IsSentinel(code format.FourCC) bool {
	switch code {
	case RootCode, HeadCode, BodyCode, TerminatorCode:
		return true
	default:
		return false
	}
}
