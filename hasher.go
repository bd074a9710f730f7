package wy

import (
	"bytes"
	"unsafe"
)

//
// typed hasher facades
//

// Hasher hashes values with a fixed secret. It is an immutable 32 byte value,
// safe to copy and to share between goroutines. Hashers carrying equal
// secrets produce equal hashes.
type Hasher struct {
	secret Secret
}

// New returns a Hasher using the default secret.
func New() Hasher {
	return Hasher{secret: defaultSecret}
}

// NewSeed returns a Hasher whose secret is derived from seed with MakeSecret.
func NewSeed(seed uint64) Hasher {
	return Hasher{secret: MakeSecret(seed)}
}

// NewSecret returns a Hasher using the given secret.
func NewSecret(s Secret) Hasher {
	return Hasher{secret: s}
}

// Secret returns the secret the Hasher mixes into its hashes.
func (h Hasher) Secret() Secret { return h.secret }

// Bytes returns the hash of b.
func (h Hasher) Bytes(b []byte) uint64 {
	return sum(*(*ptr)(ptr(&b)), ui(len(b)), 0, &h.secret)
}

// String returns the hash of the bytes of s.
func (h Hasher) String(s string) uint64 {
	return sum(*(*ptr)(ptr(&s)), ui(len(s)), 0, &h.secret)
}

// Uint64 returns the hash of v through the two word specialization, salted
// by the first secret word.
func (h Hasher) Uint64(v uint64) uint64 {
	return Hash64(v, h.secret[0])
}

// Int64 returns the hash of the two's complement bit pattern of v.
func (h Hasher) Int64(v int64) uint64 {
	return h.Uint64(uint64(v))
}

// Uint64s returns the hash of the memory backing p.
func (h Hasher) Uint64s(p []uint64) uint64 {
	return sum(*(*ptr)(ptr(&p)), 8*ui(len(p)), 0, &h.secret)
}

// Uint16s returns the hash of the memory backing p.
func (h Hasher) Uint16s(p []uint16) uint64 {
	return sum(*(*ptr)(ptr(&p)), 2*ui(len(p)), 0, &h.secret)
}

// Runes returns the hash of the memory backing p.
func (h Hasher) Runes(p []rune) uint64 {
	return sum(*(*ptr)(ptr(&p)), 4*ui(len(p)), 0, &h.secret)
}

// CString returns the hash of the prefix of p before its first NUL byte, or
// of all of p if it has none.
func (h Hasher) CString(p []byte) uint64 {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return h.Bytes(p)
}

// Pointer returns the hash of size bytes at p. The caller is responsible for
// keeping the memory alive and addressable across the call.
func (h Hasher) Pointer(p unsafe.Pointer, size uintptr) uint64 {
	return sum(p, size, 0, &h.secret)
}
