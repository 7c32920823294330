// File: gen/float.go
package gen

import (
	"math"

	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// UniformFloat generates a float64 uniformly in [0.0, 1.0) and never
// shrinks.
func UniformFloat() Generator[float64] {
	return From(func(seed prng.Seed, _ Size) rtree.Tree[float64] {
		f, _ := seed.UniformFloat()
		return rtree.Constant(f)
	})
}

// Float64Range generates float64 values uniformly in [lo, hi], shrinking
// towards whichever bound is closest to zero (0 itself, if it lies in
// range) by repeated bisection.
func Float64Range(lo, hi float64) Generator[float64] {
	if lo > hi {
		panic("gen.Float64Range: empty range (lo > hi)")
	}
	return From(func(seed prng.Seed, _ Size) rtree.Tree[float64] {
		u, _ := seed.UniformFloat()
		v := lo + u*(hi-lo)
		return floatShrinkTree(v, lo, hi)
	})
}

func floatShrinkTree(v, lo, hi float64) rtree.Tree[float64] {
	return rtree.New(v, func(yield func(rtree.Tree[float64]) bool) {
		target := floatTarget(lo, hi)
		if v == target {
			return
		}
		mid := v + (target-v)/2
		if mid != v && mid >= lo && mid <= hi {
			if !yield(floatShrinkTree(mid, lo, hi)) {
				return
			}
		}
		if target >= lo && target <= hi {
			if !yield(rtree.Constant(target)) {
				return
			}
		}
	})
}

func floatTarget(lo, hi float64) float64 {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if math.Abs(lo) < math.Abs(hi) {
		return lo
	}
	return hi
}
