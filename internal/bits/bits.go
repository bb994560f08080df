// Package bits provides low-level bit manipulation primitives used by the
// candidate-state and MRV-selection layers.
package bits

import "math/bits"

// TrailingZero16 returns the index of the least-significant set bit of x,
// or 16 if x is zero. This is the "bsf" primitive of spec §4.1.
func TrailingZero16(x uint16) int {
	return bits.TrailingZeros16(x)
}

// PopCount16 returns the number of set bits in x.
func PopCount16(x uint16) int {
	return bits.OnesCount16(x)
}

// IsolateLSB16 returns x with every bit cleared except the least-significant
// set bit: x & -x, the classic bit-isolation trick.
func IsolateLSB16(x uint16) uint16 {
	return x & (^x + 1)
}
