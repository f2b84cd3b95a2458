// Package section defines the block header that frames every element of a
// Range Series file.
//
// # Block Structure
//
// Every block starts with an 8-byte header followed by its payload:
//
//	┌──────────────┬──────────────┬──────────────────────────┐
//	│ Code (4)     │ Size (4)     │ Payload (Size bytes)     │
//	└──────────────┴──────────────┴──────────────────────────┘
//
// Both header words are unsigned 32-bit integers in the file's byte order,
// which is big-endian for files written by the instrument. Size never counts
// the header itself.
//
// # Containers
//
// Four codes act as sentinels. "AQFT" is the root container, "HEAD" and
// "BODY" open the metadata and sample regions, and "END " terminates the
// file. A container's payload is the concatenation of its children, so its
// size is the sum of their payloads plus one header per child:
//
//	AQFT  size = HEAD + 8 + BODY + 8
//	├── HEAD  size = Σ(child.Size + 8)
//	└── BODY  size = Σ(child.Size + 8)
//	END   size = 0
//
// The terminator sits after the root and is not counted by it.
package section
