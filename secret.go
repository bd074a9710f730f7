package wy

//
// secrets
//

// the default secret from the reference implementation
const (
	s0 = 0xa0761d6478bd642f
	s1 = 0xe7037ed1a0b428db
	s2 = 0x8ebc6af09c88c6e3
	s3 = 0x589965cc75374cc3
)

// Secret is the 4 words of key material a hash mixes into its input. Distinct
// secrets give unrelated hash functions over the same algorithm.
type Secret [4]uint64

var defaultSecret = Secret{s0, s1, s2, s3}

// DefaultSecret returns the secret used when none is supplied.
func DefaultSecret() Secret { return defaultSecret }

// secretBytes holds every byte with a popcount of exactly 4. MakeSecret draws
// all of its bytes from this table.
var secretBytes = [70]byte{
	15, 23, 27, 29, 30, 39, 43, 45, 46, 51, 53, 54, 57, 58,
	60, 71, 75, 77, 78, 83, 85, 86, 89, 90, 92, 99, 101, 102,
	105, 106, 108, 113, 114, 116, 120, 135, 139, 141, 142, 147,
	149, 150, 153, 154, 156, 163, 165, 166, 169, 170, 172, 177,
	178, 180, 184, 195, 197, 198, 201, 202, 204, 209, 210, 212,
	216, 225, 226, 228, 232, 240,
}

// MakeSecret derives key material from a seed. Every byte of the result has
// popcount 4 and no byte value appears twice across the four words.
func MakeSecret(seed uint64) Secret {
	var sec Secret
	var used [256]bool

	for i := range sec {
		for {
			var word [8]byte
			for j := range word {
				word[j] = secretBytes[wyrand(&seed)%70]
			}
			if !freshBytes(&word, &used) {
				continue
			}
			for j, b := range word {
				used[b] = true
				sec[i] |= uint64(b) << (8 * j)
			}
			break
		}
	}

	return sec
}

// freshBytes reports whether no byte of word repeats or was already used by
// an earlier word.
func freshBytes(word *[8]byte, used *[256]bool) bool {
	var seen [256]bool
	for _, b := range word {
		if used[b] || seen[b] {
			return false
		}
		seen[b] = true
	}
	return true
}
