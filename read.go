package wy

import "unsafe"

type (
	ptr = unsafe.Pointer
	ui  = uintptr
)

//
// unaligned little-endian reads
//
// the explicit byte compose keeps outputs identical on big-endian hosts and
// compiles to a single load where the host allows it.
//

// readU64 reads 8 bytes at an offset from p as a little-endian uint64.
func readU64(p ptr, o ui) uint64 {
	q := (*[8]byte)(ptr(ui(p) + o))
	return uint64(q[0]) | uint64(q[1])<<8 | uint64(q[2])<<16 | uint64(q[3])<<24 |
		uint64(q[4])<<32 | uint64(q[5])<<40 | uint64(q[6])<<48 | uint64(q[7])<<56
}

// readU32 reads 4 bytes at an offset from p as a little-endian uint32, zero
// extended.
func readU32(p ptr, o ui) uint64 {
	q := (*[4]byte)(ptr(ui(p) + o))
	return uint64(q[0]) | uint64(q[1])<<8 | uint64(q[2])<<16 | uint64(q[3])<<24
}

// readSmall reads k bytes, 1 <= k <= 3, into a stable 24-bit value without
// touching memory past p+k.
func readSmall(p ptr, k ui) uint64 {
	return uint64(*(*byte)(p))<<16 |
		uint64(*(*byte)(ptr(ui(p) + k>>1)))<<8 |
		uint64(*(*byte)(ptr(ui(p) + k - 1)))
}
