package bitboard

import (
	"reflect"
	"strconv"
	"testing"
)

func TestShiftEdges(t *testing.T) {
	cases := []struct {
		in  uint64
		d   Direction
		out uint64
	}{
		{1 << 7, East, 0},
		{1 << 8, West, 0},
		{1 << 63, North, 0},
		{1, South, 0},
		{1 << 15, NorthEast, 0},
		{1 << 15, SouthEast, 0},
		{1 << 16, NorthWest, 0},
		{1 << 16, SouthWest, 0},
		{1 << 27, North, 1 << 35},
		{1 << 27, South, 1 << 19},
		{1 << 27, East, 1 << 28},
		{1 << 27, West, 1 << 26},
		{1 << 27, NorthEast, 1 << 36},
		{1 << 27, NorthWest, 1 << 34},
		{1 << 27, SouthEast, 1 << 20},
		{1 << 27, SouthWest, 1 << 18},
		{FileH, East, 0},
		{FileA, West, 0},
		{Full, East, NotFileA},
		{Full, West, NotFileH},
	}
	for _, tc := range cases {
		got := Shift(tc.in, tc.d)
		if got != tc.out {
			t.Errorf("Shift(%x, %s)=%x != %x", tc.in, tc.d, got, tc.out)
		}
	}
}

func TestDirectionTable(t *testing.T) {
	offsets := []int{8, -8, 1, -1, 9, 7, -7, -9}
	for d := Direction(0); d < NumDirections; d++ {
		if d.Offset() != offsets[d] {
			t.Errorf("%s: offset %d != %d", d, d.Offset(), offsets[d])
		}
		// Opposite directions come in pairs that undo each other on
		// interior squares.
		back := Shift(Shift(1<<27, d), opposite(d))
		if back != 1<<27 {
			t.Errorf("%s: round trip gave %x", d, back)
		}
	}
	if Direction(12).String() != "?" {
		t.Error("out of range direction has a name")
	}
}

func opposite(d Direction) Direction {
	for o := Direction(0); o < NumDirections; o++ {
		if o.Offset() == -d.Offset() {
			return o
		}
	}
	panic("no opposite")
}

func TestFlips(t *testing.T) {
	cases := []struct {
		name   string
		origin uint64
		own    uint64
		opp    uint64
		d      Direction
		out    uint64
	}{
		{"west pair", 1 << 3, 1 << 0, 1<<1 | 1<<2, West, 0x6},
		{"north pair", 1 << 3, 1 << 27, 1<<11 | 1<<19, North, 0x80800},
		{"diagonal", 1 << 0, 1 << 27, 1<<9 | 1<<18, NorthEast, 0x40200},
		{"longest run", 1 << 0, 1 << 7, 0x7e, East, 0x7e},
		{"no anchor", 1 << 2, 0, 1<<1 | 1<<0, West, 0},
		{"gap", 1 << 3, 1 << 0, 1 << 2, West, 0},
		{"no neighbour", 1 << 3, 1 << 0, 1 << 1, West, 0},
		{"wraps", 1 << 8, 1 << 6, 1 << 7, West, 0},
		{"wraps east", 1 << 7, 1 << 9, 1 << 8, East, 0},
		{"own neighbour", 1 << 3, 1 << 2, 1 << 1, West, 0},
	}
	for _, tc := range cases {
		got := Flips(tc.origin, tc.own, tc.opp, tc.d)
		if got != tc.out {
			t.Errorf("%s: Flips(%x, %x, %x, %s)=%s != %s",
				tc.name, tc.origin, tc.own, tc.opp, tc.d,
				strconv.FormatUint(got, 2),
				strconv.FormatUint(tc.out, 2))
		}
	}
}

func TestRunMultipleOrigins(t *testing.T) {
	origin := uint64(1<<0 | 1<<16)
	opp := uint64(1<<1 | 1<<2 | 1<<17)
	if got := Run(origin, opp, East); got != 0x6|1<<17 {
		t.Errorf("Run=%x", got)
	}
	if got := Run(origin, opp, West); got != 0 {
		t.Errorf("Run west=%x", got)
	}
}

func TestSquares(t *testing.T) {
	cases := []struct {
		in  uint64
		out []uint8
	}{
		{0, nil},
		{1, []uint8{0}},
		{1<<63 | 1<<9 | 1<<2, []uint8{2, 9, 63}},
	}
	for _, tc := range cases {
		got := Squares(tc.in, nil)
		if !reflect.DeepEqual(got, tc.out) {
			t.Errorf("Squares(%x)=%v != %v", tc.in, got, tc.out)
		}
	}
	if Popcount(Full) != 64 || Popcount(0) != 0 || Popcount(0x7e) != 6 {
		t.Error("Popcount")
	}
	if TrailingZeros(1<<40) != 40 || TrailingZeros(0) != 64 {
		t.Error("TrailingZeros")
	}
}
