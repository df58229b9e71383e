package bitboard

import "math/bits"

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

func TrailingZeros(x uint64) uint {
	return uint(bits.TrailingZeros64(x))
}

// Squares appends the index of every set bit in x to out, lowest
// first.
func Squares(x uint64, out []uint8) []uint8 {
	for x != 0 {
		out = append(out, uint8(TrailingZeros(x)))
		x &= x - 1
	}
	return out
}
