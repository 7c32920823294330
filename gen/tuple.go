// File: gen/tuple.go
package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// Tuple2 zips ga and gb into a Pair, shrinking one element at a time. Go
// lacks variadic generics, so each arity gets its own function rather than
// one tuple(gs...).
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[rtree.Pair[A, B]] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[rtree.Pair[A, B]] {
		s1, s2 := seed.Split()
		return rtree.Zip2(Run(ga, s1, size), Run(gb, s2, size))
	})
}

// Tuple3 combines three generators into a Triple.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[rtree.Triple[A, B, C]] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[rtree.Triple[A, B, C]] {
		s1, rest := seed.Split()
		s2, s3 := rest.Split()
		return rtree.Zip3(Run(ga, s1, size), Run(gb, s2, size), Run(gc, s3, size))
	})
}

// Tuple4 combines four generators into a Quad.
func Tuple4[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[rtree.Quad[A, B, C, D]] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[rtree.Quad[A, B, C, D]] {
		s1, rest1 := seed.Split()
		s2, rest2 := rest1.Split()
		s3, s4 := rest2.Split()
		return rtree.Zip4(Run(ga, s1, size), Run(gb, s2, size), Run(gc, s3, size), Run(gd, s4, size))
	})
}

// MapOf generates a map[K]V from a uniquely-keyed list of (k, v) pairs.
// Because key uniqueness is already enforced by UniqListOf, the resulting
// map always has exactly as many entries as the generated list's length.
func MapOf[K comparable, V any](kg Generator[K], vg Generator[V], maxTries int) Generator[map[K]V] {
	pairs := UniqListOf(Tuple2(kg, vg), func(p rtree.Pair[K, V]) K { return p.First }, maxTries)
	return Map(pairs, func(ps []rtree.Pair[K, V]) map[K]V {
		m := make(map[K]V, len(ps))
		for _, p := range ps {
			m[p.First] = p.Second
		}
		return m
	})
}

// FixedMap generates a map[K]V with a fixed key set: every shrink of the
// result has exactly the same keys as the root, only the values shrink.
func FixedMap[K comparable, V any](gs map[K]Generator[V]) Generator[map[K]V] {
	if len(gs) == 0 {
		panic("gen.FixedMap: requires at least one key")
	}
	keys := make([]K, 0, len(gs))
	entryGens := make([]Generator[rtree.Pair[K, V]], 0, len(gs))
	for k, g := range gs {
		keys = append(keys, k)
		entryGens = append(entryGens, Tuple2(Constant(k), g))
	}
	entries := FixedListOf(entryGens)
	return Map(entries, func(ps []rtree.Pair[K, V]) map[K]V {
		m := make(map[K]V, len(ps))
		for _, p := range ps {
			m[p.First] = p.Second
		}
		return m
	})
}

// KeywordOf generates an identifier-keyed association list. Go has no atom
// type, so Identifier takes the place of an atom generator (see
// identifier.go).
func KeywordOf[V any](vg Generator[V]) Generator[[]rtree.Pair[string, V]] {
	return ListOf(Tuple2(Identifier(), vg))
}
