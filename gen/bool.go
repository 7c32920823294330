package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// Boolean generates booleans uniformly: member_of([false, true]). Shrinks
// towards false, by convention the "smaller" boolean counterexample.
func Boolean() Generator[bool] {
	return MemberOf([]bool{false, true})
}

// MemberOf picks uniformly among a non-empty, finite enumerable. It shrinks
// towards enum[0] — pass the "simplest" value first. An empty enum panics
// with EmptyEnumerableError. Enumerables must be finite; picking from an
// infinite one is not representable in Go's slice-based form and is
// therefore simply not expressible here.
func MemberOf[A any](enum []A) Generator[A] {
	if len(enum) == 0 {
		panic(&EmptyEnumerableError{})
	}
	return From(func(seed prng.Seed, _ Size) rtree.Tree[A] {
		idx, _ := seed.UniformIntInRange(0, int64(len(enum)-1))
		return memberShrinkTree(enum, int(idx))
	})
}

// memberShrinkTree builds the shrink tree for the element at position idx:
// children are every earlier index, each further shrinking towards index 0.
func memberShrinkTree[A any](enum []A, idx int) rtree.Tree[A] {
	return rtree.New(enum[idx], func(yield func(rtree.Tree[A]) bool) {
		for i := 0; i < idx; i++ {
			if !yield(memberShrinkTree(enum, i)) {
				return
			}
		}
	})
}
