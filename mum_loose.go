//go:build !wystrongmum

package wy

// strongMum selects the xor-folding form of mum. See mum_stronger.go.
const strongMum = false
