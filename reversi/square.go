package reversi

import (
	"errors"

	"github.com/nelhage/reversi/bitboard"
)

// A Square is a board index, 0..63, numbered row-major from (row 0,
// col 0).
type Square uint8

const NumSquares = bitboard.Size * bitboard.Size

var (
	ErrSquareRange = errors.New("square out of range")
	ErrOverlap     = errors.New("own and opp stones overlap")
)

func At(row, col int) Square {
	return Square(row*bitboard.Size + col)
}

func (s Square) Row() int {
	return int(s&63) / bitboard.Size
}

func (s Square) Col() int {
	return int(s&63) % bitboard.Size
}

// Bit returns the mask for s. Indices past 63 wrap onto the board
// rather than shifting out of the word.
func (s Square) Bit() uint64 {
	return 1 << (s & 63)
}

// CheckSquare converts a caller-supplied index to a Square, rejecting
// anything off the board.
func CheckSquare(i int) (Square, error) {
	if i < 0 || i >= NumSquares {
		return 0, ErrSquareRange
	}
	return Square(i), nil
}

// Validate reports whether own and opp describe a possible position.
// None of the board operations check this themselves.
func Validate(own, opp uint64) error {
	if own&opp != 0 {
		return ErrOverlap
	}
	return nil
}
