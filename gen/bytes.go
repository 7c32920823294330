// File: gen/bytes.go
package gen

// ByteSlice generates a []byte by concatenating a shrinkable list of bytes.
func ByteSlice() Generator[[]byte] {
	return Map(ListOf(Byte()), func(bs []byte) []byte {
		out := make([]byte, len(bs))
		copy(out, bs)
		return out
	})
}
