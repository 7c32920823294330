// File: gen/integer.go
package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// IntegerInRange generates integers uniformly in [lo, hi] (inclusive) and
// ignores size. Its shrink tree targets the in-range value
// closest to zero: children are n - floor(n/2^k) for k = 0, 1, 2, ... while
// floor(n/2^k) != 0 (so the first candidate is 0 itself), filtered to stay
// in [lo, hi], each expanded
// recursively by the same rule — so the tree admits a path all the way down
// to the closest-to-zero in-range value, never only a single bisection
// step. lo > hi panics (empty range is a caller error).
func IntegerInRange[T integerConstraint](lo, hi T) Generator[T] {
	if lo > hi {
		panic("gen.IntegerInRange: empty range (lo > hi)")
	}
	loI, hiI := int64(lo), int64(hi)
	return From(func(seed prng.Seed, _ Size) rtree.Tree[T] {
		n, _ := seed.UniformIntInRange(loI, hiI)
		return rtree.Map(integerShrinkTree(n, loI, hiI), func(n int64) T { return T(n) })
	})
}

// integerShrinkTree builds the shrink tree for a single integer root,
// bounded to [lo, hi]. It works in int64 throughout (including the halving
// divisor) so that it never overflows a narrow instantiation of T; the
// caller maps the result back to T.
func integerShrinkTree(n, lo, hi int64) rtree.Tree[int64] {
	return rtree.New(n, func(yield func(rtree.Tree[int64]) bool) {
		for _, c := range integerHalvingSteps(n) {
			if c < lo || c > hi {
				continue
			}
			if !yield(integerShrinkTree(c, lo, hi)) {
				return
			}
		}
	})
}

// integerHalvingSteps returns n - n/2^k for k = 0, 1, 2, ... while n/2^k != 0,
// i.e. the classic "shrink an integer towards zero by halving its
// magnitude" sequence (4 -> 0, 2, 3; 8 -> 0, 4, 6, 7; ...). It never
// includes n itself and terminates because the divisor strictly grows.
func integerHalvingSteps(n int64) []int64 {
	var steps []int64
	for k := int64(1); ; k *= 2 {
		half := n / k
		if half == 0 {
			break
		}
		steps = append(steps, n-half)
	}
	return steps
}

// Integer generates signed integers scaled by size, shrinking towards 0:
// sized(s -> IntegerInRange(-s, s)).
func Integer() Generator[int] {
	return Sized(func(size Size) Generator[int] {
		return IntegerInRange(-size, size)
	})
}

// Byte generates a uniform byte in [0, 255] and never shrinks
// (no_shrink(integer_in_range(0, 255))).
func Byte() Generator[byte] {
	return NoShrink(IntegerInRange[byte](0, 255))
}
