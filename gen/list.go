// File: gen/list.go
package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// FixedListOf splits the seed across len(gs) generators, invokes each, and
// zips the resulting trees. Unlike ListOf, the length never shrinks — every
// element is present in every descendant.
func FixedListOf[A any](gs []Generator[A]) Generator[[]A] {
	if len(gs) == 0 {
		panic("gen.FixedListOf: requires at least one generator")
	}
	return From(func(seed prng.Seed, size Size) rtree.Tree[[]A] {
		trees := make([]rtree.Tree[A], len(gs))
		s := seed
		for i, g := range gs {
			var left prng.Seed
			left, s = s.Split()
			trees[i] = Run(g, left, size)
		}
		return rtree.Zip(trees)
	})
}

// deletionShrinkTree builds a list's shrink tree by element deletion: root
// is xs, children are, for every index i, the deletion-shrink-tree of xs
// with index i removed. Laziness is essential here — xs can be large and
// most shrink drivers stop after the first failing child.
func deletionShrinkTree[A any](xs []A) rtree.Tree[[]A] {
	return rtree.New(xs, func(yield func(rtree.Tree[[]A]) bool) {
		for i := range xs {
			next := make([]A, 0, len(xs)-1)
			next = append(next, xs[:i]...)
			next = append(next, xs[i+1:]...)
			if !yield(deletionShrinkTree(next)) {
				return
			}
		}
	})
}

// ListOf draws a length uniformly in [0, size] (one split of the seed),
// generates that many element trees (further splits), zips them into a
// Tree[[]A], then maps the list root through deletionShrinkTree and
// flattens — so the result shrinks both by element-value shrinking (from
// Zip, the outer tree of the flatten, yielded first) and by element
// deletion (the mapped-in inner tree, yielded after).
func ListOf[A any](elem Generator[A]) Generator[[]A] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[[]A] {
		lenSeed, rest := seed.Split()
		n, _ := lenSeed.UniformIntInRange(0, int64(size))

		trees := make([]rtree.Tree[A], n)
		s := rest
		for i := range trees {
			var left prng.Seed
			left, s = s.Split()
			trees[i] = Run(elem, left, size)
		}

		zipped := rtree.Zip(trees)
		withDeletions := rtree.Map(zipped, deletionShrinkTree[A])
		return rtree.Flatten(withDeletions)
	})
}

// UniqListOf is like ListOf but rejects any draw whose key collides with an
// already-seen key, redrawing up to maxTries consecutive times before
// panicking with TooManyDuplicatesError. Because an element-value shrink
// (via Zip) could collapse two distinct keys onto the same value, only the
// deletion shrink is kept for the result tree — deleting an element from a
// unique list can never introduce a duplicate, so this is the one shrink
// shape that is guaranteed to preserve uniqueness.
func UniqListOf[A any, K comparable](elem Generator[A], key func(A) K, maxTries int) Generator[[]A] {
	if maxTries <= 0 {
		panic("gen.UniqListOf: maxTries must be positive")
	}
	return From(func(seed prng.Seed, size Size) rtree.Tree[[]A] {
		lenSeed, rest := seed.Split()
		n, _ := lenSeed.UniformIntInRange(0, int64(size))
		needed := int(n)

		roots := make([]A, 0, needed)
		seen := make(map[K]struct{}, needed)
		s := rest
		for len(roots) < needed {
			consecutive := 0
			for {
				var left prng.Seed
				left, s = s.Split()
				v := Run(elem, left, size).Root
				k := key(v)
				if _, dup := seen[k]; !dup {
					seen[k] = struct{}{}
					roots = append(roots, v)
					break
				}
				consecutive++
				if consecutive >= maxTries {
					panic(&TooManyDuplicatesError{
						MaxTries:  maxTries,
						Remaining: needed - len(roots),
						Generated: len(roots),
					})
				}
			}
		}
		return deletionShrinkTree(roots)
	})
}
