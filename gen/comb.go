// File: gen/comb.go
package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// -------------------------
// Basic building blocks
// -------------------------

// Constant always returns v; it never shrinks.
func Constant[A any](v A) Generator[A] {
	return From(func(_ prng.Seed, _ Size) rtree.Tree[A] {
		return rtree.Constant(v)
	})
}

// NoShrink retains only the root of g's tree, discarding every shrink
// candidate.
func NoShrink[A any](g Generator[A]) Generator[A] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[A] {
		return rtree.Constant(Run(g, seed, size).Root)
	})
}

// Resize invokes g with size s regardless of the size supplied by the
// caller.
func Resize[A any](g Generator[A], s Size) Generator[A] {
	return From(func(seed prng.Seed, _ Size) rtree.Tree[A] {
		return Run(g, seed, s)
	})
}

// Sized builds a generator whose shape depends on size: (seed, size) ->
// f(size)(seed, size).
func Sized[A any](f func(Size) Generator[A]) Generator[A] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[A] {
		return Run(f(size), seed, size)
	})
}

// Scale reshapes the size passed to g via h before generating: sized(s ->
// resize(g, h(s))). An h that returns a negative size is clamped to 0 rather
// than panicking, since the size is derived, not user-supplied.
func Scale[A any](g Generator[A], h func(Size) Size) Generator[A] {
	return Sized(func(size Size) Generator[A] {
		s := h(size)
		if s < 0 {
			s = 0
		}
		return Resize(g, s)
	})
}

// -------------------------
// Combinators
// -------------------------

// Map applies f to the root and every descendant of g's tree, preserving
// shrink structure: map(map(g, f), h) observationally equals map(g, h . f).
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[B] {
		return rtree.Map(Run(g, seed, size), f)
	})
}

// Filter keeps only values satisfying pred, rejection-sampling up to
// maxConsecutiveFailures fresh draws before panicking with
// FilterTooNarrowError. Every surviving tree has MapFilter applied so that
// every descendant also satisfies pred.
func Filter[A any](g Generator[A], pred func(A) bool, maxConsecutiveFailures int) Generator[A] {
	if maxConsecutiveFailures <= 0 {
		panic("gen.Filter: maxConsecutiveFailures must be positive")
	}
	return From(func(seed prng.Seed, size Size) rtree.Tree[A] {
		s := seed
		for tries := 0; tries < maxConsecutiveFailures; tries++ {
			var left prng.Seed
			left, s = s.Split()
			tr := Run(g, left, size)
			if out, ok := rtree.MapFilter(tr, func(a A) (A, bool) { return a, pred(a) }); ok {
				return out
			}
		}
		panic(&FilterTooNarrowError{MaxConsecutiveFailures: maxConsecutiveFailures})
	})
}

// NonEmpty is filter(g, not-empty, 10): the common case of rejecting an
// empty collection.
func NonEmpty[A any](g Generator[[]A]) Generator[[]A] {
	return Filter(g, func(xs []A) bool { return len(xs) > 0 }, 10)
}

// BindFilter is the monadic combinator behind Bind, generalized to let fun
// reject the drawn A (returning ok=false) and re-draw, up to triesLeft
// times, before panicking with FilterTooNarrowError. It follows a five-step
// algorithm:
//  1. split the seed into s1, s2
//  2. draw t := g(s1, size)
//  3. map_filter fun over t, retrying on "skip" with a fresh split of s2
//  4. map the resulting Generator[B] tree with h(g') = g'(s2, size) —
//     s2 is reused across every node, not re-split, so that an outer
//     shrink produces an inner tree drawn from the same random branch as
//     the root — monadic bind via seed reuse, the subtlest invariant in
//     the whole library
//  5. flatten to Tree[B]
func BindFilter[A, B any](g Generator[A], fun func(A) (Generator[B], bool), triesLeft int) Generator[B] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[B] {
		return bindFilterAt(g, fun, seed, size, triesLeft, triesLeft)
	})
}

func bindFilterAt[A, B any](g Generator[A], fun func(A) (Generator[B], bool), seed prng.Seed, size Size, triesLeft, maxTries int) rtree.Tree[B] {
	s1, s2 := seed.Split()
	t := Run(g, s1, size)

	treeOfGen, ok := rtree.MapFilter(t, func(a A) (Generator[B], bool) { return fun(a) })
	if !ok {
		if triesLeft == 0 {
			panic(&FilterTooNarrowError{MaxConsecutiveFailures: maxTries})
		}
		// step 3: retry with (s2, size, tries_left - 1).
		return bindFilterAt(g, fun, s2, size, triesLeft-1, maxTries)
	}

	// s2 is captured by this closure and reused, unsplit, for every node of
	// treeOfGen — that is the seed-reuse invariant BindFilter depends on.
	treeOfTree := rtree.Map(treeOfGen, func(gb Generator[B]) rtree.Tree[B] {
		return Run(gb, s2, size)
	})
	return rtree.Flatten(treeOfTree)
}

// Bind sequences g's output into k, the monadic flatMap: bind(constant(a),
// k) observationally equals k(a).
func Bind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return BindFilter(g, func(a A) (Generator[B], bool) { return k(a), true }, 0)
}

// Frequency picks generator i with probability weights[i] / sum(weights),
// implemented as bind(integer_in_range(0, sum-1), pick). Shrinking follows
// Bind's outer-first flatten order: the integer's shrinks towards 0 (each
// re-picking an earlier generator, run on the same reused seed) come first,
// then the shrinks of the chosen generator's own value.
func Frequency[A any](weights []int, generators []Generator[A]) Generator[A] {
	if len(weights) != len(generators) || len(weights) == 0 {
		panic("gen.Frequency: weights and generators must be equal-length and non-empty")
	}
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("gen.Frequency: weights must be non-negative")
		}
		total += w
	}
	if total <= 0 {
		panic("gen.Frequency: weights must sum to a positive total")
	}

	bounds := make([]int, len(weights))
	acc := 0
	for i, w := range weights {
		acc += w
		bounds[i] = acc
	}
	pick := func(n int) Generator[A] {
		for i, b := range bounds {
			if n < b {
				return generators[i]
			}
		}
		return generators[len(generators)-1]
	}
	return Bind(IntegerInRange(0, total-1), pick)
}

// OneOf chooses uniformly among gs: bind(integer_in_range(0, n-1), pick).
func OneOf[A any](gs ...Generator[A]) Generator[A] {
	if len(gs) == 0 {
		panic("gen.OneOf: requires at least one generator")
	}
	weights := make([]int, len(gs))
	for i := range weights {
		weights[i] = 1
	}
	return Frequency(weights, gs)
}
