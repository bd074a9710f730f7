// Package wy implements the wyhash 64-bit hash and the wyrand generator,
// with helpers mapping draws onto uniform and normal distributions.
//
// The one-shot functions hash with seed 0 and the default secret. Hasher
// carries an alternate secret, either caller supplied or derived from a seed,
// and adds typed entry points for integers, wide strings and raw memory.
// Rand is an 8 byte generator state that also satisfies math/rand.Source64.
package wy

// Hash returns the hash of b with seed 0 and the default secret.
func Hash(b []byte) uint64 {
	return sum(*(*ptr)(ptr(&b)), ui(len(b)), 0, &defaultSecret)
}

// HashString returns the hash of the bytes of s with seed 0 and the default
// secret.
func HashString(s string) uint64 {
	return sum(*(*ptr)(ptr(&s)), ui(len(s)), 0, &defaultSecret)
}

// HashSeed returns the hash of b with the given seed and the default secret.
func HashSeed(b []byte, seed uint64) uint64 {
	return sum(*(*ptr)(ptr(&b)), ui(len(b)), seed, &defaultSecret)
}

// HashStringSeed returns the hash of the bytes of s with the given seed and
// the default secret.
func HashStringSeed(s string, seed uint64) uint64 {
	return sum(*(*ptr)(ptr(&s)), ui(len(s)), seed, &defaultSecret)
}
