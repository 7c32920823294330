// Package quick provides quick testing utilities for Go.
// It includes helper functions for common testing patterns, particularly
// for value comparison and assertion utilities, and Stream, the streaming
// adapter that drives a gen.Generator as an ordinary Go iterator.
package quick

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lazytree/proptest/gen"
	"github.com/lazytree/proptest/prng"
)

// Equal compares two values of the same type and fails the test if they are not equal.
// It uses go-cmp for deep comparison and provides detailed diff output when values differ.
// The function calls t.Helper() to mark itself as a test helper function.
//
// Parameters:
//   - t: The testing.T instance for the current test
//   - got: The actual value obtained from the code under test
//   - want: The expected value
//
// Example usage:
//
//	quick.Equal(t, result, expected)
//	quick.Equal(t, []int{1, 2, 3}, []int{1, 2, 3})
//	quick.Equal(t, map[string]int{"a": 1}, map[string]int{"a": 1})
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Stream drives g as an infinite iterator: starting from a fresh seed and
// size 1, each step splits the seed, invokes g, and yields the root of the
// resulting tree (its shrink children are discarded — Stream is for
// sampling, not failure-driven shrinking). Size grows by one on every step,
// saturating at 100. The sequence never terminates on its own and never
// deduplicates; callers stop it the way any iter.Seq is stopped, by
// returning false from the range body or via break.
func Stream[A any](seed int64, g gen.Generator[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		s := prng.NewSeed(seed)
		size := 1
		for {
			var left prng.Seed
			left, s = s.Split()
			root := gen.Run(g, left, size).Root
			if !yield(root) {
				return
			}
			if size < 100 {
				size++
			}
		}
	}
}
