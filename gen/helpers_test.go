package gen

import (
	"testing"

	"github.com/lazytree/proptest/rtree"
)

// walkToTarget performs a bounded depth-first search over tr looking for
// any reachable node (root included) whose value equals target. It is used
// by shrink-reachability tests that check a tree contains a path terminating
// at some expected minimal value.
func walkToTarget[T comparable](tr rtree.Tree[T], target T, maxDepth int) bool {
	if tr.Root == target {
		return true
	}
	if maxDepth <= 0 {
		return false
	}
	for c := range tr.Children {
		if walkToTarget(c, target, maxDepth-1) {
			return true
		}
	}
	return false
}

// assertAllIntInRange walks every node reachable from tr within a bounded
// number of visits and fails the test if any value falls outside [lo, hi].
// The visit cap keeps the check terminating for conceptually-infinite
// shrink trees.
func assertAllIntInRange(t *testing.T, tr rtree.Tree[int], lo, hi int) {
	t.Helper()
	visited := 0
	var walk func(rtree.Tree[int])
	walk = func(n rtree.Tree[int]) {
		if visited > 2000 {
			return
		}
		visited++
		if n.Root < lo || n.Root > hi {
			t.Fatalf("value %d out of range [%d,%d]", n.Root, lo, hi)
		}
		for c := range n.Children {
			walk(c)
		}
	}
	walk(tr)
}

// countNodes walks up to limit nodes of tr and returns how many were
// visited, used by tests that only need to bound traversal cost.
func countNodes[T any](tr rtree.Tree[T], limit int) int {
	n := 0
	var walk func(rtree.Tree[T])
	walk = func(t rtree.Tree[T]) {
		if n >= limit {
			return
		}
		n++
		for c := range t.Children {
			if n >= limit {
				return
			}
			walk(c)
		}
	}
	walk(tr)
	return n
}
