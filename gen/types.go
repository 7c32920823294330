// Package gen provides generators for property-based testing in Go. A
// Generator[A] is a pure function (seed, size) -> rtree.Tree[A]: calling it
// produces a random value of A at the root and, lazily, a shrink tree of
// smaller-or-simpler candidates reachable through Children.
package gen

import (
	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// Size bounds the magnitude or cardinality of generated values (integer
// range, list length, string length, recursive-tree depth). It grows across
// iterations of the streaming adapter (quick.Stream) from 1 towards 100.
type Size = int

// Generator is the public contract for all generators: a function from a
// seed and a size to a lazy shrink tree. Generators are values, freely
// copied and composed, and hold no state between calls.
type Generator[A any] interface {
	Generate(seed prng.Seed, size Size) rtree.Tree[A]
}

// genFunc adapts a plain function to the Generator interface.
type genFunc[A any] struct {
	fn func(seed prng.Seed, size Size) rtree.Tree[A]
}

func (g genFunc[A]) Generate(seed prng.Seed, size Size) rtree.Tree[A] {
	return g.fn(seed, size)
}

// From builds a Generator from a function that implements the contract
// directly. This is how every primitive and combinator in this package is
// ultimately constructed.
func From[A any](fn func(prng.Seed, Size) rtree.Tree[A]) Generator[A] {
	return genFunc[A]{fn: fn}
}

// Run invokes g with the given seed and size, returning its shrink tree.
// Run(g, s, n) is deterministic: calling it twice with equal seeds and
// sizes always produces an observationally identical tree.
func Run[A any](g Generator[A], seed prng.Seed, size Size) rtree.Tree[A] {
	return g.Generate(seed, size)
}

// integerConstraint is the set of built-in integer types gen.IntegerInRange
// works over (gen.Integer is its int instantiation). Collapsing every width into one generic
// generator means the bisection/target/bounds shrink heuristic is written
// and tested exactly once instead of once per width.
type integerConstraint interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
