//go:build !wystrongmum

package wy_test

import (
	"fmt"

	"github.com/zeebo/wy"
)

func ExampleHashString() {
	fmt.Printf("%016x\n", wy.HashString("an example to hash"))
	// Output: e308fa0b4cee6d79
}

func ExampleNewSeed() {
	h := wy.NewSeed(1)
	fmt.Printf("%016x\n", h.String("an example to hash"))
	// Output: 0db7fff59576228e
}

func ExampleNewRandSeed() {
	r := wy.NewRandSeed(42)
	fmt.Printf("%016x\n", r.Uint64())
	fmt.Printf("%.3f\n", r.Float64())
	// Output:
	// ca71d87c76983989
	// 0.494
}
