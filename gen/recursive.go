// File: gen/recursive.go
package gen

import (
	"math"

	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// Tree builds a recursive generator out of leafData and subtreeFun: let
// k = ⌊size^1.1⌋, compute a random pseudo-factorization of k into levels
// [n1, n2, ...], then fold leafData through
// frequency([(1, g), (2, resize(subtreeFun(g), ni))]) once per level before
// invoking the final generator. Weighting the leaf 1 against the subtree 2
// biases toward recursion while always admitting termination; bounding the
// number of levels by the pseudo-factorization of size keeps expected depth
// logarithmic.
func Tree[A any](subtreeFun func(Generator[A]) Generator[A], leafData Generator[A]) Generator[A] {
	return From(func(seed prng.Seed, size Size) rtree.Tree[A] {
		factorSeed, genSeed := seed.Split()
		levels := pseudoFactorize(factorSeed, size)

		g := leafData
		for _, n := range levels {
			prev := g
			g = Frequency([]int{1, 2}, []Generator[A]{prev, Resize(subtreeFun(prev), n)})
		}
		return Run(g, genSeed, size)
	})
}

// pseudoFactorize computes a random pseudo-factorization of k into levels
// [n1, n2, ...]: starting from k = ⌊size^1.1⌋, repeatedly divide by a
// random factor drawn from 1..=⌊log2 k⌋ and record that factor as a level,
// stopping once the remaining quotient drops below 2. A draw of 1 ends the
// factorization with the remaining quotient as the final level — dividing by
// 1 makes no progress, so it is the "stop here" outcome, not a factor.
func pseudoFactorize(seed prng.Seed, size Size) []int {
	k := int(math.Floor(math.Pow(float64(size), 1.1)))
	var levels []int
	s := seed
	for k >= 2 {
		maxFactor := int(math.Floor(math.Log2(float64(k))))
		factor, next := s.UniformIntInRange(1, int64(maxFactor))
		s = next
		if factor == 1 {
			levels = append(levels, k)
			break
		}
		levels = append(levels, int(factor))
		k = k / int(factor)
	}
	return levels
}
