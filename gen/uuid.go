// File: gen/uuid.go
package gen

import (
	"github.com/google/uuid"

	"github.com/lazytree/proptest/prng"
	"github.com/lazytree/proptest/rtree"
)

// UUID generates random version-4 UUIDs. It fills all 16 bytes from the
// seed deterministically (two int64 draws), then stamps the version and
// variant bits the same way uuid.NewRandom does, so every value generated is
// a well-formed RFC 4122 UUID. It never shrinks — there is no meaningful
// "simpler" UUID.
func UUID() Generator[uuid.UUID] {
	return From(func(seed prng.Seed, _ Size) rtree.Tree[uuid.UUID] {
		var id uuid.UUID
		s := seed
		for i := 0; i < 2; i++ {
			word, next := s.UniformIntInRange(-(1 << 62), (1<<62)-1)
			s = next
			for b := 0; b < 8; b++ {
				id[i*8+b] = byte(word >> (8 * b))
			}
		}
		id[6] = (id[6] & 0x0f) | 0x40 // version 4
		id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
		return rtree.Constant(id)
	})
}
