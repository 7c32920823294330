// Package rtree implements LazyTree: a rose tree with a root value and a
// lazily-realized sequence of child trees. It is the shrink-tree data
// structure that gen.Generator builds and that a shrink driver walks.
//
// Children are represented as an iter.Seq so that range-over-func callers
// can stop early (a shrink driver only ever wants the first failing child)
// without ever materializing the rest of a conceptually infinite sequence.
package rtree

import "iter"

// Tree is a rose tree: Root is the generated value, Children lazily yields
// smaller-or-simpler candidate trees. Invariant (enforced by callers, not by
// Tree itself): every Root reachable through Children satisfies whatever
// constraint the producing generator places on Root.
type Tree[A any] struct {
	Root     A
	Children iter.Seq[Tree[A]]
}

// empty is the zero lazy sequence: a single no-op range.
func empty[A any](func(A) bool) {}

// Constant builds a leaf tree: just root, no children. Used by generators
// that never shrink (gen.Constant, gen.NoShrink, gen.UniformFloat).
func Constant[A any](root A) Tree[A] {
	return Tree[A]{Root: root, Children: empty[Tree[A]]}
}

// New builds a tree from an explicit root and child sequence.
func New[A any](root A, children iter.Seq[Tree[A]]) Tree[A] {
	return Tree[A]{Root: root, Children: children}
}

// Map applies f to the root and, lazily, to every descendant.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Tree[B]{
		Root: f(t.Root),
		Children: func(yield func(Tree[B]) bool) {
			for c := range t.Children {
				if !yield(Map(c, f)) {
					return
				}
			}
		},
	}
}

// Filter assumes t.Root satisfies pred (callers must ensure this). Children
// whose root fails pred are dropped entirely, along with their descendants,
// since shrinking must never surface a value that violates the generator's
// own constraints.
func Filter[A any](t Tree[A], pred func(A) bool) Tree[A] {
	return Tree[A]{
		Root: t.Root,
		Children: func(yield func(Tree[A]) bool) {
			for c := range t.Children {
				if !pred(c.Root) {
					continue
				}
				if !yield(Filter(c, pred)) {
					return
				}
			}
		},
	}
}

// MapFilter applies f to every root down the tree, keeping only the
// subtrees whose root passes. If f rejects t.Root itself, ok is false and
// the returned Tree is the zero value. This is the primitive bind-with-
// filter uses to keep every shrink of a bound generator valid.
func MapFilter[A, B any](t Tree[A], f func(A) (B, bool)) (out Tree[B], ok bool) {
	root, ok := f(t.Root)
	if !ok {
		return Tree[B]{}, false
	}
	return Tree[B]{
		Root: root,
		Children: func(yield func(Tree[B]) bool) {
			for c := range t.Children {
				cb, ok := MapFilter(c, f)
				if !ok {
					continue
				}
				if !yield(cb) {
					return
				}
			}
		},
	}, true
}

// Flatten is the monadic join for rose trees: the flattened tree's root is
// the inner tree's root; its children are the outer children (flattened,
// so outer structure shrinks first) followed by the inner tree's own
// children. gen.Bind inherits this "outer-first" order: shrinking first tries
// candidates re-derived from a smaller A, and only then the shrinks of the
// bound value B.
func Flatten[A any](t Tree[Tree[A]]) Tree[A] {
	inner := t.Root
	return Tree[A]{
		Root: inner.Root,
		Children: func(yield func(Tree[A]) bool) {
			for oc := range t.Children {
				if !yield(Flatten(oc)) {
					return
				}
			}
			for ic := range inner.Children {
				if !yield(ic) {
					return
				}
			}
		},
	}
}

// Zip combines a slice of trees into one tree of slices. The root is the
// slice of roots. Children shrink exactly one position at a time: for each
// index i and each child c of trees[i], Zip yields trees with position i
// replaced by c. The child sequence is lazy and flat across positions.
func Zip[A any](trees []Tree[A]) Tree[[]A] {
	roots := make([]A, len(trees))
	for i, t := range trees {
		roots[i] = t.Root
	}
	return Tree[[]A]{
		Root: roots,
		Children: func(yield func(Tree[[]A]) bool) {
			for i := range trees {
				for c := range trees[i].Children {
					next := make([]Tree[A], len(trees))
					copy(next, trees)
					next[i] = c
					if !yield(Zip(next)) {
						return
					}
				}
			}
		},
	}
}
