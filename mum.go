package wy

import "math/bits"

//
// wide multiply primitives
//

// mum returns the 128-bit product of a and b as two 64-bit halves. With the
// wystrongmum tag the halves are xor-folded back into the operands instead of
// replacing them.
func mum(a, b uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(a, b)
	if strongMum {
		return a ^ lo, b ^ hi
	}
	return lo, hi
}

// mix multiplies a and b and folds the product in half.
func mix(a, b uint64) uint64 {
	a, b = mum(a, b)
	return a ^ b
}

// mum32 returns the same product halves as bits.Mul64 using only 32x32
// multiplies, the strategy for hosts without a wide multiply instruction.
func mum32(a, b uint64) (lo, hi uint64) {
	ha, hb := a>>32, b>>32
	la, lb := a&0xffffffff, b&0xffffffff

	rh, rm0, rm1, rl := ha*hb, ha*lb, hb*la, la*lb

	t := rl + rm0<<32
	c := uint64(0)
	if t < rl {
		c = 1
	}
	lo = t + rm1<<32
	if lo < t {
		c++
	}
	hi = rh + rm0>>32 + rm1>>32 + c
	return lo, hi
}
