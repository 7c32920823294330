package rtree

// Pair, Triple and Quad back gen.Tuple2/Tuple3/Tuple4. Go generics have no
// variadic type parameters, so the homogeneous Zip above cannot combine
// trees of different element types; Zip2/Zip3/Zip4 repeat Zip's
// one-position-at-a-time shrink rule for two, three and four distinctly
// typed trees instead.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Zip2 combines two trees into a tree of Pair, shrinking one side at a time.
func Zip2[A, B any](ta Tree[A], tb Tree[B]) Tree[Pair[A, B]] {
	return Tree[Pair[A, B]]{
		Root: Pair[A, B]{ta.Root, tb.Root},
		Children: func(yield func(Tree[Pair[A, B]]) bool) {
			for ca := range ta.Children {
				if !yield(Zip2(ca, tb)) {
					return
				}
			}
			for cb := range tb.Children {
				if !yield(Zip2(ta, cb)) {
					return
				}
			}
		},
	}
}

// Zip3 combines three trees into a tree of Triple.
func Zip3[A, B, C any](ta Tree[A], tb Tree[B], tc Tree[C]) Tree[Triple[A, B, C]] {
	return Tree[Triple[A, B, C]]{
		Root: Triple[A, B, C]{ta.Root, tb.Root, tc.Root},
		Children: func(yield func(Tree[Triple[A, B, C]]) bool) {
			for ca := range ta.Children {
				if !yield(Zip3(ca, tb, tc)) {
					return
				}
			}
			for cb := range tb.Children {
				if !yield(Zip3(ta, cb, tc)) {
					return
				}
			}
			for cc := range tc.Children {
				if !yield(Zip3(ta, tb, cc)) {
					return
				}
			}
		},
	}
}

// Zip4 combines four trees into a tree of Quad.
func Zip4[A, B, C, D any](ta Tree[A], tb Tree[B], tc Tree[C], td Tree[D]) Tree[Quad[A, B, C, D]] {
	return Tree[Quad[A, B, C, D]]{
		Root: Quad[A, B, C, D]{ta.Root, tb.Root, tc.Root, td.Root},
		Children: func(yield func(Tree[Quad[A, B, C, D]]) bool) {
			for ca := range ta.Children {
				if !yield(Zip4(ca, tb, tc, td)) {
					return
				}
			}
			for cb := range tb.Children {
				if !yield(Zip4(ta, cb, tc, td)) {
					return
				}
			}
			for cc := range tc.Children {
				if !yield(Zip4(ta, tb, cc, td)) {
					return
				}
			}
			for cd := range td.Children {
				if !yield(Zip4(ta, tb, tc, cd)) {
					return
				}
			}
		},
	}
}
