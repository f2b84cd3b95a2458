// Package endian provides byte order utilities for the Range Series wire format.
//
// Range Series files are big-endian by definition. Instead of keeping a
// process-wide "host is little endian" flag, rsconv threads an EndianEngine
// value through every decode and encode call. The engine reads and writes
// wire-order fields directly, so host order only matters for diagnostics.
//
// # Basic Usage
//
//	engine := endian.GetWireEngine()
//	size := engine.Uint32(header[4:8])
//	buf = engine.AppendUint32(buf, size)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// NeedsSwap reports whether values encoded with engine have to be byte swapped
// to be read in host order.
func NeedsSwap(engine EndianEngine) bool {
	return !CompareNativeEndian(engine)
}

// Name returns "big-endian" or "little-endian" for the given byte order.
func Name(order binary.ByteOrder) string {
	if order == binary.BigEndian {
		return "big-endian"
	}

	return "little-endian"
}

// GetWireEngine returns the engine matching the Range Series wire order.
func GetWireEngine() EndianEngine {
	return binary.BigEndian
}
