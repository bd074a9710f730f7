package wy

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/xxh3"
)

// patternBuf returns n bytes where byte i is i*131.
func patternBuf(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i * 131)
	}
	return buf
}

func TestHash(t *testing.T) {
	buf := patternBuf(256)

	t.Run("SeedZero", func(t *testing.T) {
		for n := 0; n <= len(buf); n++ {
			b := buf[:n]
			assert.Equal(t, HashSeed(b, 0), Hash(b))
			assert.Equal(t, Hash(b), HashString(string(b)))
			assert.Equal(t, HashStringSeed(string(b), 0), HashString(string(b)))
		}
	})

	t.Run("Alignment", func(t *testing.T) {
		data := patternBuf(130)
		want := Hash(data)

		for off := 1; off <= 16; off++ {
			shifted := make([]byte, off+len(data))
			copy(shifted[off:], data)
			assert.Equal(t, want, Hash(shifted[off:]))
		}
	})

	t.Run("LengthClasses", func(t *testing.T) {
		seen := make(map[uint64]int)
		for n := 0; n <= len(buf); n++ {
			h := HashSeed(buf[:n], 5)
			prev, ok := seen[h]
			assert.That(t, !ok || prev == n)
			seen[h] = n
		}
		assert.Equal(t, len(buf)+1, len(seen))
	})

	t.Run("SeedSensitivity", func(t *testing.T) {
		seen := make(map[uint64]bool)
		for seed := uint64(0); seed < 512; seed++ {
			seen[HashSeed(buf[:33], seed)] = true
		}
		assert.Equal(t, 512, len(seen))
	})

	t.Run("SecretSensitivity", func(t *testing.T) {
		seen := make(map[uint64]bool)
		for seed := uint64(0); seed < 64; seed++ {
			seen[NewSeed(seed).Bytes(buf[:33])] = true
		}
		seen[New().Bytes(buf[:33])] = true
		assert.Equal(t, 65, len(seen))
	})

	t.Run("Copy", func(t *testing.T) {
		for _, n := range []int{0, 1, 5, 13, 33, 77, 200} {
			cp := append([]byte(nil), buf[:n]...)
			assert.Equal(t, Hash(buf[:n]), Hash(cp))
		}
	})
}

func BenchmarkHash(b *testing.B) {
	for _, n := range []int{4, 16, 48, 256, 4096} {
		buf := patternBuf(n)

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			var sink uint64
			b.ReportAllocs()
			b.SetBytes(int64(n))

			for i := 0; i < b.N; i++ {
				sink = Hash(buf)
			}

			runtime.KeepAlive(sink)
		})
	}
}

func BenchmarkXXH3(b *testing.B) {
	for _, n := range []int{4, 16, 48, 256, 4096} {
		buf := patternBuf(n)

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			var sink uint64
			b.ReportAllocs()
			b.SetBytes(int64(n))

			for i := 0; i < b.N; i++ {
				sink = xxh3.Hash(buf)
			}

			runtime.KeepAlive(sink)
		})
	}
}

func BenchmarkHash64(b *testing.B) {
	var sink uint64
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sink = Hash64(uint64(i), s0)
	}

	runtime.KeepAlive(sink)
}
