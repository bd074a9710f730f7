package wy

import (
	"encoding/binary"
	"math/bits"
	"math/rand"
)

//
// wyrand generator
//

const (
	randAdd = 0x2d358dccaa6c78a5
	randXor = 0x8bb84b93962eacc9
)

// wyrand advances state and returns the next output.
func wyrand(state *uint64) uint64 {
	*state += randAdd
	return mix(*state, *state^randXor)
}

// Rand is a wyrand generator. Not safe for concurrent use; callers wanting
// per-goroutine streams should construct one per goroutine.
type Rand struct {
	state uint64
}

// NewRand returns a generator seeded from the OS entropy source.
func NewRand() *Rand {
	return &Rand{state: entropySeed()}
}

// NewRandSeed returns a generator with the given starting state. Generators
// with equal starting states emit equal sequences.
func NewRandSeed(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Uint64 returns the next output of the generator.
func (r *Rand) Uint64() uint64 {
	return wyrand(&r.state)
}

// Uint64n returns a value uniform in [0, n), consuming one draw. The
// reduction is multiply-shift, not modulo; n of 0 returns 0.
func (r *Rand) Uint64n(n uint64) uint64 {
	return u0k(r.Uint64(), n)
}

// Float64 returns a value uniform in [0, 1), consuming one draw.
func (r *Rand) Float64() float64 {
	return u01(r.Uint64())
}

// Float64Range returns a value uniform in [lo, hi), consuming one draw. It
// panics if hi <= lo.
func (r *Rand) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		panic("wy: Float64Range: hi must be greater than lo")
	}
	return r.Float64()*(hi-lo) + lo
}

// NormFloat64 returns an approximately normal value with mean 0 and standard
// deviation 1, consuming one draw. The approximation counts the bits of the
// draw, so outputs are discrete and bounded by about 29 either side of 0.
func (r *Rand) NormFloat64() float64 {
	return gau(r.Uint64())
}

// Normal returns an approximately normal value with the given mean and
// standard deviation, consuming one draw. It panics if stddev <= 0.
func (r *Rand) Normal(mean, stddev float64) float64 {
	if stddev <= 0 {
		panic("wy: Normal: stddev must be positive")
	}
	return r.NormFloat64()*stddev + mean
}

// Read fills p with the output stream of the generator. It consumes one draw
// per 8 bytes, serializing each little-endian, and truncates the last draw
// when len(p) is not a multiple of 8. The error is always nil.
func (r *Rand) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.Uint64())
		copy(p, tail[:])
	}
	return n, nil
}

// Uint64s fills p with one draw per element.
func (r *Rand) Uint64s(p []uint64) {
	for i := range p {
		p[i] = r.Uint64()
	}
}

// Int63 returns a non-negative 63-bit value so a Rand can drive math/rand.
func (r *Rand) Int63() int64 {
	return int64(r.Uint64() &^ (1 << 63))
}

// Seed resets the generator to the given state.
func (r *Rand) Seed(seed int64) {
	r.state = uint64(seed)
}

var _ rand.Source64 = (*Rand)(nil)

//
// distribution helpers
//

// u01 maps a draw to a float64 uniform in [0, 1) using its top 52 bits.
func u01(x uint64) float64 {
	return float64(x>>12) * 0x1p-52
}

// u0k maps a draw to a uint64 uniform in [0, k) by taking the high half of
// the full product. In range for any k > 0 in every build.
func u0k(x, k uint64) uint64 {
	hi, _ := bits.Mul64(x, k)
	return hi
}

// gau maps a draw to an approximately normal float64: the popcount of a
// uniform word is binomial(64, 1/2), recentered to be symmetric about 0.
func gau(x uint64) float64 {
	return float64(bits.OnesCount64(x)-32) * 0.9082482904638627
}
