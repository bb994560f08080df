// Package minarg implements the horizontal-minimum primitive used by the
// literal-count core's MRV branching rule: find the lowest-index minimum
// among up to 324 small counters, with a subset masked out as unusable
// (spec §4.1, §4.5).
//
// A scalar path is always correct. A wider, chunked path is used on CPUs
// that report the vector extensions the original implementation targeted;
// both paths are required to produce bit-identical results, so the choice
// of path never changes a puzzle's statistics (spec's "must be
// bit-identical" requirement, verified in minarg_test.go).
package minarg

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Sentinel stands in for a disabled (masked-out) counter: it can never be
// the minimum of a row that has at least one live constraint.
const Sentinel = 0xFF

// wideSupported reports whether this CPU has the vector extensions that
// make the chunked path worth dispatching to: SSE4.1 (amd64, the original's
// _mm_minpos_epu16 target) or ASIMD (arm64).
var wideSupported = cpuid.CPU.Supports(cpuid.SSE4) || cpu.ARM64.HasASIMD

const wideThreshold = 8

// HorizontalMin returns the minimum of counts, treating counts[i] as
// Sentinel wherever disabled[i] is true, and the lowest index attaining that
// minimum. If every entry is disabled, it returns (Sentinel, -1).
//
// len(counts) must equal len(disabled).
func HorizontalMin(counts []uint8, disabled []bool) (uint8, int) {
	if wideSupported && len(counts) >= wideThreshold {
		return horizontalMinWide(counts, disabled)
	}
	return horizontalMinScalar(counts, disabled)
}

func horizontalMinScalar(counts []uint8, disabled []bool) (uint8, int) {
	minVal := uint8(Sentinel)
	minIdx := -1
	for i, c := range counts {
		v := c
		if disabled[i] {
			v = Sentinel
		}
		if v < minVal {
			minVal = v
			minIdx = i
		}
	}
	return minVal, minIdx
}

// horizontalMinWide processes the slice in chunks of 8 lanes, followed by a
// scalar tail. Each chunk is a plain per-lane scalar loop: it uses neither
// SIMD intrinsics nor SWAR packing (Go has no portable access to
// pminub/minv equivalents). It is gated on the same CPU features as the
// vectorized original.
func horizontalMinWide(counts []uint8, disabled []bool) (uint8, int) {
	minVal := uint8(Sentinel)
	minIdx := -1
	n := len(counts)
	i := 0
	for ; i+wideThreshold <= n; i += wideThreshold {
		for lane := 0; lane < wideThreshold; lane++ {
			idx := i + lane
			v := counts[idx]
			if disabled[idx] {
				v = Sentinel
			}
			if v < minVal {
				minVal = v
				minIdx = idx
			}
		}
	}
	for ; i < n; i++ {
		v := counts[i]
		if disabled[i] {
			v = Sentinel
		}
		if v < minVal {
			minVal = v
			minIdx = i
		}
	}
	return minVal, minIdx
}
