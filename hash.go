package wy

//
// wyhash core
//

// sum hashes n bytes at p with the given starting seed and secret.
func sum(p ptr, n ui, seed uint64, s *Secret) uint64 {
	seed ^= mix(seed^s[0], s[1])

	var a, b uint64
	switch {
	case n <= 16:
		switch {
		case n >= 9:
			a, b = readU64(p, 0), readU64(p, n-8)
		case n >= 4:
			a, b = readU32(p, 0), readU32(p, n-4)
		case n > 0:
			a = readSmall(p, n)
		}

	default:
		q, i := p, n
		if i > 48 {
			see1, see2 := seed, seed
			for {
				seed = mix(readU64(q, 0)^s[1], readU64(q, 8)^seed)
				see1 = mix(readU64(q, 16)^s[2], readU64(q, 24)^see1)
				see2 = mix(readU64(q, 32)^s[3], readU64(q, 40)^see2)
				q, i = ptr(ui(q)+48), i-48
				if i <= 48 {
					break
				}
			}
			seed ^= see1 ^ see2
		}
		for i > 16 {
			seed = mix(readU64(q, 0)^s[1], readU64(q, 8)^seed)
			q, i = ptr(ui(q)+16), i-16
		}
		// the last 16 bytes of the buffer, overlapping the consumed region
		// when fewer than 16 remain
		a, b = readU64(p, n-16), readU64(p, n-8)
	}

	a ^= s[1]
	b ^= seed
	a, b = mum(a, b)
	return mix(a^s[0]^uint64(n), b^s[1])
}

// Hash64 hashes a pair of 64-bit words directly, with no buffer walk. It
// backs the integer entry points on Hasher.
func Hash64(x, y uint64) uint64 {
	return mix(mix(x^s0, y^s1), s1^16)
}
