package reversitest

import (
	"math/rand"

	"github.com/nelhage/reversi/notation"
	"github.com/nelhage/reversi/reversi"
)

func Board(s string) (own, opp uint64) {
	own, opp, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return own, opp
}

func Square(s string) reversi.Square {
	sq, e := notation.ParseSquare(s)
	if e != nil {
		panic(e)
	}
	return sq
}

func Mask(squares []uint8) uint64 {
	var out uint64
	for _, s := range squares {
		out |= 1 << s
	}
	return out
}

// RandomPosition returns a pair of disjoint masks. The density of
// stones varies from call to call so both sparse and crowded boards
// turn up.
func RandomPosition(r *rand.Rand) (own, opp uint64) {
	filled := r.Uint64()
	switch r.Intn(4) {
	case 0:
		filled &= r.Uint64()
	case 1:
		filled |= r.Uint64()
	case 2:
		filled &= r.Uint64() & r.Uint64()
	}
	own = filled & r.Uint64()
	return own, filled &^ own
}

var rays = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// ReferenceFlips computes the stones captured by playing sq by walking
// each ray a square at a time. It is slow and obviously correct, and
// is used to check the bit-parallel versions.
func ReferenceFlips(own, opp uint64, sq reversi.Square) uint64 {
	var flips uint64
	for _, d := range rays {
		var line uint64
		r, c := sq.Row()+d[0], sq.Col()+d[1]
		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			bit := reversi.At(r, c).Bit()
			if opp&bit != 0 {
				line |= bit
			} else {
				if own&bit != 0 {
					flips |= line
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
	return flips
}

// ReferenceMoves returns the empty squares where ReferenceFlips finds
// a capture.
func ReferenceMoves(own, opp uint64) uint64 {
	var moves uint64
	for i := 0; i < reversi.NumSquares; i++ {
		sq := reversi.Square(i)
		if (own|opp)&sq.Bit() != 0 {
			continue
		}
		if ReferenceFlips(own, opp, sq) != 0 {
			moves |= sq.Bit()
		}
	}
	return moves
}
