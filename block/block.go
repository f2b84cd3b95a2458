package block

import (
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/section"
)

// Record is the decoded content of a leaf block.
type Record interface {
	// Kind returns the block kind the record belongs to.
	Kind() Kind
	// Size returns the number of payload bytes the record encodes to.
	Size() uint32
}

// Block is one entry of a flat sequence.
//
// Containers carry no Record; their children are the blocks that follow
// them in the Sequence. Leaves carry a Record, and when decoded from binary
// also the raw wire Payload. A leaf whose payload was too short for its
// layout keeps the Payload but has a nil Record.
//
// Trailing holds payload bytes found after the record layout. They are
// written back by the binary encoder but have no text form.
type Block struct {
	Code     format.FourCC
	Size     uint32 // payload bytes, excluding the 8-byte header
	Payload  []byte
	Record   Record
	Trailing []byte
}

// IsContainer reports whether the block is one of the four sentinels.
func (b *Block) IsContainer() bool {
	return section.IsSentinel(b.Code)
}

// LeafSize returns the payload size a leaf encodes to: its record layout
// plus any trailing bytes. Blocks without a record report Size.
func (b *Block) LeafSize() uint32 {
	if b.Record == nil {
		return b.Size
	}

	return b.Record.Size() + uint32(len(b.Trailing))
}

// WireSize returns the number of bytes the block occupies on the wire,
// header included.
func (b *Block) WireSize() uint64 {
	return uint64(b.Size) + section.HeaderSize
}

// Sequence is a preorder flattening of the block tree.
type Sequence []Block

// Index returns the position of the first block with the given code, or -1.
func (s Sequence) Index(code format.FourCC) int {
	for i := range s {
		if s[i].Code == code {
			return i
		}
	}

	return -1
}

// Count returns the number of blocks with the given code.
func (s Sequence) Count(code format.FourCC) int {
	n := 0
	for i := range s {
		if s[i].Code == code {
			n++
		}
	}

	return n
}

// Leaves returns the number of non-container blocks.
func (s Sequence) Leaves() int {
	n := 0
	for i := range s {
		if !s[i].IsContainer() {
			n++
		}
	}

	return n
}
