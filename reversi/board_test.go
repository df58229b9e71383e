package reversi_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/nelhage/reversi/bitboard"
	"github.com/nelhage/reversi/reversi"
	"github.com/nelhage/reversi/reversitest"
)

func TestStart(t *testing.T) {
	own, opp := reversi.Start()
	if own != 0x0000000810000000 || opp != 0x0000001008000000 {
		t.Fatalf("start: %x %x", own, opp)
	}

	moves := reversi.MoveList(own, opp)
	expect := []reversi.Square{
		reversitest.Square("d3"),
		reversitest.Square("c4"),
		reversitest.Square("f5"),
		reversitest.Square("e6"),
	}
	if !reflect.DeepEqual(moves, expect) {
		t.Fatalf("moves=%v != %v", moves, expect)
	}
	if !reversi.HasLegalMove(own, opp) {
		t.Fatal("no legal move at start")
	}

	for _, m := range moves {
		flips := reversi.FlipMask(own, opp, m)
		if reversi.Popcount(flips) != 1 {
			t.Errorf("%d: flips=%x", m, flips)
		}
		nown, nopp := reversi.ApplyMove(own, opp, m)
		if a, b := reversi.Score(nown, nopp); a != 4 || b != 1 {
			t.Errorf("%d: score %d/%d", m, a, b)
		}
	}
}

func TestFlipMask(t *testing.T) {
	cases := []struct {
		board string
		sq    string
		flips string
	}{
		{
			// two directions at once
			"8/8/8/8/8/X1X5/OO6/1X6",
			"a1",
			"8/8/8/8/8/8/OO6/8",
		},
		{
			"8/8/8/8/8/8/8/XOOOOOO1",
			"h1",
			"8/8/8/8/8/8/8/1OOOOOO1",
		},
		{
			// east edge: the run would continue onto the next row
			"8/8/8/8/8/8/X7/X5OO",
			"f1",
			"8/8/8/8/8/8/8/8",
		},
		{
			"X7/1O6/2O5/3O4/4O3/5O2/6O1/8",
			"h1",
			"8/1O6/2O5/3O4/4O3/5O2/6O1/8",
		},
		{
			"8/8/8/8/8/8/8/O1OX4",
			"b1",
			"8/8/8/8/8/8/8/2O5",
		},
		{
			"8/8/8/8/8/8/8/1OOX4",
			"a1",
			"8/8/8/8/8/8/8/1OO5",
		},
		{
			"8/8/8/8/8/8/8/1OO5",
			"a1",
			"8/8/8/8/8/8/8/8",
		},
	}
	for _, tc := range cases {
		own, opp := reversitest.Board(tc.board)
		_, want := reversitest.Board(tc.flips)
		sq := reversitest.Square(tc.sq)
		got := reversi.FlipMask(own, opp, sq)
		if got != want {
			t.Errorf("FlipMask(%s, %s)=%x != %x", tc.board, tc.sq, got, want)
		}
		if ref := reversitest.ReferenceFlips(own, opp, sq); ref != got {
			t.Errorf("FlipMask(%s, %s)=%x, reference %x", tc.board, tc.sq, got, ref)
		}
	}
}

func TestFlipGroups(t *testing.T) {
	own, opp := reversitest.Board("8/8/8/8/8/X1X5/OO6/1X6")
	groups := reversi.FlipGroups(own, opp, reversitest.Square("a1"))
	for d, g := range groups {
		switch bitboard.Direction(d) {
		case bitboard.North:
			if !reflect.DeepEqual(g, []uint8{8}) {
				t.Errorf("north: %v", g)
			}
		case bitboard.NorthEast:
			if !reflect.DeepEqual(g, []uint8{9}) {
				t.Errorf("northeast: %v", g)
			}
		default:
			if len(g) != 0 {
				t.Errorf("%s: %v", bitboard.Direction(d), g)
			}
		}
	}

	own, opp = reversitest.Board("8/8/8/8/8/8/8/XOOOOOO1")
	groups = reversi.FlipGroups(own, opp, reversitest.Square("h1"))
	if !reflect.DeepEqual(groups[bitboard.West], []uint8{1, 2, 3, 4, 5, 6}) {
		t.Errorf("west: %v", groups[bitboard.West])
	}
}

func TestEmptyAndFull(t *testing.T) {
	if reversi.LegalMoves(0, 0) != 0 || reversi.HasLegalMove(0, 0) {
		t.Error("moves on an empty board")
	}
	full := ^uint64(0)
	for _, own := range []uint64{0, full, 0x00ff00ff00ff00ff, 0x0000000810000000} {
		if m := reversi.LegalMoves(own, full&^own); m != 0 {
			t.Errorf("full board %x: moves %x", own, m)
		}
	}
}

func TestApplyIllegal(t *testing.T) {
	own, opp := reversi.Start()
	sq := reversitest.Square("a1")
	nown, nopp := reversi.ApplyMove(own, opp, sq)
	if nown != own|1 || nopp != opp {
		t.Errorf("apply illegal: %x %x", nown, nopp)
	}
}

func TestSquareRange(t *testing.T) {
	if _, err := reversi.CheckSquare(64); err != reversi.ErrSquareRange {
		t.Errorf("64: %v", err)
	}
	if _, err := reversi.CheckSquare(-1); err != reversi.ErrSquareRange {
		t.Errorf("-1: %v", err)
	}
	if sq, err := reversi.CheckSquare(63); err != nil || sq != 63 {
		t.Errorf("63: %d %v", sq, err)
	}
	if reversi.Square(64+9).Bit() != reversi.Square(9).Bit() {
		t.Error("Bit does not wrap")
	}
	if reversi.Validate(1, 2) != nil || reversi.Validate(3, 2) != reversi.ErrOverlap {
		t.Error("Validate")
	}
}

func TestRandomPositions(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		own, opp := reversitest.RandomPosition(r)
		if err := reversitest.Check(own, opp); err != nil {
			t.Fatalf("position %d own=%x opp=%x: %v", i, own, opp, err)
		}
	}
}

func TestNoWraparound(t *testing.T) {
	// Every wrapping step off one edge lands on the far edge column,
	// which is full of opp stones backed by own stones. Nothing played
	// on the near edge may capture them.
	cases := []struct {
		edge, far, backing int
	}{
		{7, 0, 1},
		{0, 7, 6},
	}
	for _, tc := range cases {
		var own, opp uint64
		for r := 0; r < 8; r++ {
			opp |= reversi.At(r, tc.far).Bit()
			own |= reversi.At(r, tc.backing).Bit()
		}
		for row := 0; row < 8; row++ {
			sq := reversi.At(row, tc.edge)
			if flips := reversi.FlipMask(own, opp, sq); flips != 0 {
				t.Errorf("col %d row %d: flips %x", tc.edge, row, flips)
			}
		}
		var col uint64
		for r := 0; r < 8; r++ {
			col |= reversi.At(r, tc.edge).Bit()
		}
		if m := reversi.LegalMoves(own, opp); m&col != 0 {
			t.Errorf("col %d: moves %x", tc.edge, m&col)
		}
	}
}
