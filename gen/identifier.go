// File: gen/identifier.go
package gen

import (
	"math"

	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// identifierHead is the three allowed first-character classes: a lowercase
// letter, an underscore, or an uppercase letter. The first character is
// drawn uniformly from all 53 of them.
const identifierHead = AlphabetLower + "_" + AlphabetUpper

// identifierTail additionally allows digits once past the first character.
const identifierTail = identifierHead + AlphabetDigits

// Identifier generates snake_case-shaped strings: Go's stand-in for an
// atom/symbol type, which Go has no native equivalent of. Length is
// ⌊√size⌋+1, capped at 256, scaling more slowly than an ordinary string so
// identifiers stay readable even at large sizes.
func Identifier() Generator[string] {
	return Sized(func(size Size) Generator[string] {
		n := int(math.Sqrt(float64(size))) + 1
		if n > 256 {
			n = 256
		}
		return From(func(seed prng.Seed, _ Size) rtree.Tree[string] {
			headSeed, tailSeed := seed.Split()
			head := Run(MemberOf([]rune(identifierHead)), headSeed, 0)

			tailLen := n - 1
			tailTrees := make([]rtree.Tree[rune], tailLen)
			s := tailSeed
			for i := range tailTrees {
				var left prng.Seed
				left, s = s.Split()
				tailTrees[i] = Run(MemberOf([]rune(identifierTail)), left, 0)
			}

			zippedTail := rtree.Zip(tailTrees)
			withDeletions := rtree.Map(zippedTail, deletionShrinkTree[rune])
			tailTree := rtree.Flatten(withDeletions)

			return rtree.Map(rtree.Zip2(head, tailTree), func(p rtree.Pair[rune, []rune]) string {
				return string(append([]rune{p.First}, p.Second...))
			})
		})
	})
}
