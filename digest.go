package wy

import "hash"

//
// hash.Hash64 adapter
//

var (
	_ hash.Hash   = (*Digest)(nil)
	_ hash.Hash64 = (*Digest)(nil)
)

// Digest adapts a Hasher to the hash.Hash64 interface. Writes accumulate in
// a buffer and Sum64 hashes the whole buffer in one shot, so a Digest always
// agrees with Hasher.Bytes over the concatenated writes.
type Digest struct {
	h   Hasher
	buf []byte
}

// NewDigest returns a Digest over the default secret.
func NewDigest() *Digest {
	return New().NewDigest()
}

// NewDigest returns a Digest that hashes with h's secret.
func (h Hasher) NewDigest() *Digest {
	return &Digest{h: h}
}

// Write appends p to the pending buffer. The error is always nil.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum64 returns the hash of everything written since the last Reset.
func (d *Digest) Sum64() uint64 {
	return d.h.Bytes(d.buf)
}

// Sum appends the big-endian hash to b.
func (d *Digest) Sum(b []byte) []byte {
	x := d.Sum64()
	return append(b,
		byte(x>>56), byte(x>>48), byte(x>>40), byte(x>>32),
		byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// Reset drops the pending buffer.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest) BlockSize() int { return 1 }
