package wy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// entropySeed reads a starting state from the OS entropy source. It never
// blocks and never fails: if the source is unavailable the clock seeds the
// generator instead.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
