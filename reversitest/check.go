package reversitest

import (
	"fmt"

	"github.com/nelhage/reversi/bitboard"
	"github.com/nelhage/reversi/reversi"
)

// Check cross-checks every board operation on one position: the bulk
// move generator against the per-square one and against
// ReferenceMoves, each FlipMask against ReferenceFlips and FlipGroups,
// and the stone counts after every legal move. It returns a
// description of the first disagreement found.
func Check(own, opp uint64) error {
	moves := reversi.LegalMoves(own, opp)
	if ref := ReferenceMoves(own, opp); moves != ref {
		return fmt.Errorf("LegalMoves=%x reference=%x", moves, ref)
	}
	if again := reversi.LegalMoves(own, opp); again != moves {
		return fmt.Errorf("LegalMoves not repeatable: %x then %x", moves, again)
	}
	if reversi.HasLegalMove(own, opp) != (moves != 0) {
		return fmt.Errorf("HasLegalMove disagrees with moves=%x", moves)
	}

	empty := ^(own | opp)
	var perSquare uint64
	for i := 0; i < reversi.NumSquares; i++ {
		sq := reversi.Square(i)
		flips := reversi.FlipMask(own, opp, sq)
		if flips&^opp != 0 {
			return fmt.Errorf("%d: flips non-opp stones %x", i, flips&^opp)
		}
		if empty&sq.Bit() == 0 {
			continue
		}
		if ref := ReferenceFlips(own, opp, sq); ref != flips {
			return fmt.Errorf("%d: FlipMask=%x reference=%x", i, flips, ref)
		}
		if flips == 0 {
			continue
		}
		perSquare |= sq.Bit()

		var merged uint64
		for d, g := range reversi.FlipGroups(own, opp, sq) {
			for j := 1; j < len(g); j++ {
				if g[j-1] >= g[j] {
					return fmt.Errorf("%d: group %s out of order: %v", i, bitboard.Direction(d), g)
				}
			}
			merged |= Mask(g)
		}
		if merged != flips {
			return fmt.Errorf("%d: FlipGroups=%x FlipMask=%x", i, merged, flips)
		}

		nown, nopp := reversi.ApplyMove(own, opp, sq)
		n := reversi.Popcount(flips)
		if reversi.Popcount(nown) != reversi.Popcount(own)+1+n ||
			reversi.Popcount(nopp) != reversi.Popcount(opp)-n {
			return fmt.Errorf("%d: counts %d/%d after flipping %d", i,
				reversi.Popcount(nown), reversi.Popcount(nopp), n)
		}
		if nown&nopp != 0 {
			return fmt.Errorf("%d: overlap after move: %x", i, nown&nopp)
		}
	}
	if perSquare != moves {
		return fmt.Errorf("per-square moves=%x bulk=%x", perSquare, moves)
	}
	return nil
}
