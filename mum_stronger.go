//go:build wystrongmum

package wy

// strongMum selects the xor-folding form of mum, where the product halves are
// xored back into the operands rather than replacing them. Hash and generator
// outputs differ from the default build; every other property is unchanged.
const strongMum = true
