package bitboard

// Squares are numbered row-major: bit 0 is (row 0, col 0), bit 7 is
// (row 0, col 7) and bit 63 is (row 7, col 7).
const (
	Size = 8

	FileA uint64 = 0x0101010101010101
	FileH uint64 = 0x8080808080808080

	NotFileA = ^FileA
	NotFileH = ^FileH
	Full     = ^uint64(0)
)

type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	NumDirections = 8
)

// maxRun is the longest line of enemy stones that can sit between a
// placed stone and its anchor on an 8-wide board.
const maxRun = Size - 2

var directions = [NumDirections]struct {
	shift int
	mask  uint64
	name  string
}{
	North:     {+8, Full, "n"},
	South:     {-8, Full, "s"},
	East:      {+1, NotFileA, "e"},
	West:      {-1, NotFileH, "w"},
	NorthEast: {+9, NotFileA, "ne"},
	NorthWest: {+7, NotFileH, "nw"},
	SouthEast: {-7, NotFileA, "se"},
	SouthWest: {-9, NotFileH, "sw"},
}

func (d Direction) Offset() int {
	return directions[d].shift
}

// Mask returns the bits a step in d may land on. A step east that
// carries a stone off column 7 would land on column 0 of the next row,
// so East excludes file A, and so on.
func (d Direction) Mask() uint64 {
	return directions[d].mask
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "?"
	}
	return directions[d].name
}

// Shift moves every bit in x one square in direction d, dropping
// bits that would wrap around a file edge or leave the board.
func Shift(x uint64, d Direction) uint64 {
	dir := &directions[d]
	if dir.shift > 0 {
		return (x << uint(dir.shift)) & dir.mask
	}
	return (x >> uint(-dir.shift)) & dir.mask
}

// run extends lines of opp stones outward from every bit of origin
// in direction d. It returns every stone covered along with the
// stones at the far end of the longest lines.
func run(origin, opp uint64, d Direction) (covered, tip uint64) {
	tip = Shift(origin, d) & opp
	for i := 0; i < maxRun; i++ {
		if tip == 0 {
			break
		}
		covered |= tip
		next := Shift(tip, d) & opp
		if next == 0 {
			break
		}
		tip = next
	}
	return covered, tip
}

// Run returns the opp stones reachable from origin in direction d by
// a contiguous line, without checking what terminates the line.
func Run(origin, opp uint64, d Direction) uint64 {
	covered, _ := run(origin, opp, d)
	return covered
}

// Flips returns the opp stones captured in direction d by a stone
// placed on the single square origin: a contiguous line of opp
// stones that is closed off by an own stone. It returns 0 if the
// line runs into an empty square or off the board.
func Flips(origin, own, opp uint64, d Direction) uint64 {
	covered, tip := run(origin, opp, d)
	if Shift(tip, d)&own == 0 {
		return 0
	}
	return covered
}
