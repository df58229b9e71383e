package reversi

import "github.com/nelhage/reversi/bitboard"

// Every operation here takes the position as two masks: own, the
// stones of the side to move, and opp, the stones of the other side.
// The masks are assumed to be disjoint; see Validate.

const (
	startOwn uint64 = 1<<28 | 1<<35
	startOpp uint64 = 1<<27 | 1<<36
)

// Start returns the standard opening position, from the point of view
// of the first player.
func Start() (own, opp uint64) {
	return startOwn, startOpp
}

// LegalMoves returns the set of empty squares where a stone would
// capture at least one opp stone.
//
// Instead of testing each square, it extends lines of opp stones out
// from every own stone at once, in each direction, and keeps the empty
// squares that close a line off.
func LegalMoves(own, opp uint64) uint64 {
	empty := ^(own | opp)
	var moves uint64
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		moves |= bitboard.Shift(bitboard.Run(own, opp, d), d) & empty
	}
	return moves
}

func HasLegalMove(own, opp uint64) bool {
	return LegalMoves(own, opp) != 0
}

// MoveList returns the legal squares in ascending order.
func MoveList(own, opp uint64) []Square {
	moves := LegalMoves(own, opp)
	out := make([]Square, 0, bitboard.Popcount(moves))
	for moves != 0 {
		out = append(out, Square(bitboard.TrailingZeros(moves)))
		moves &= moves - 1
	}
	return out
}

// FlipMask returns the opp stones captured by playing at sq, or 0 if
// sq is not a legal move.
func FlipMask(own, opp uint64, sq Square) uint64 {
	origin := sq.Bit()
	var flips uint64
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		flips |= bitboard.Flips(origin, own, opp, d)
	}
	return flips
}

// FlipGroups is FlipMask split up by direction: entry d holds the
// indices of the stones captured in bitboard.Direction d, in ascending
// order, and is nil if there are none.
func FlipGroups(own, opp uint64, sq Square) [bitboard.NumDirections][]uint8 {
	var groups [bitboard.NumDirections][]uint8
	origin := sq.Bit()
	for d := bitboard.Direction(0); d < bitboard.NumDirections; d++ {
		groups[d] = bitboard.Squares(bitboard.Flips(origin, own, opp, d), nil)
	}
	return groups
}

// ApplyMove places a stone for the side to move at sq and flips the
// captured stones. It does not check that the move is legal; an
// illegal square just gets a stone with nothing flipped.
func ApplyMove(own, opp uint64, sq Square) (newOwn, newOpp uint64) {
	flips := FlipMask(own, opp, sq)
	placed := sq.Bit() | flips
	return own | placed, opp &^ placed
}

func Popcount(x uint64) int {
	return bitboard.Popcount(x)
}

// Score returns the number of stones for each side.
func Score(own, opp uint64) (int, int) {
	return bitboard.Popcount(own), bitboard.Popcount(opp)
}
