package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/reversi/bitboard"
)

// Boards are written one row per segment, highest row first, with
// segments separated by '/' or newlines. Each square is 'X' for the
// side to move, 'O' for the opponent and '.' or '-' for empty; a digit
// stands for that many empty squares. Blanks inside a row are
// ignored. The start position is
//
//	8/8/8/3XO3/3OX3/8/8/8
func ParseBoard(s string) (own, opp uint64, err error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\n'
	})
	var parsed []string
	for _, r := range rows {
		r = strings.TrimSpace(r)
		if r != "" {
			parsed = append(parsed, r)
		}
	}
	if len(parsed) != bitboard.Size {
		return 0, 0, fmt.Errorf("bad board: %d rows", len(parsed))
	}
	for i, r := range parsed {
		row := bitboard.Size - 1 - i
		col := 0
		for _, c := range r {
			if col >= bitboard.Size {
				return 0, 0, fmt.Errorf("row %d too long: %q", row+1, r)
			}
			bit := uint64(1) << uint(row*bitboard.Size+col)
			switch {
			case c == ' ' || c == '\t' || c == '\r':
			case c == 'X' || c == 'x':
				own |= bit
				col++
			case c == 'O' || c == 'o':
				opp |= bit
				col++
			case c == '.' || c == '-':
				col++
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				return 0, 0, fmt.Errorf("row %d: bad square %q", row+1, c)
			}
		}
		if col != bitboard.Size {
			return 0, 0, fmt.Errorf("row %d bad length: %d", row+1, col)
		}
	}
	return own, opp, nil
}

var errOverlap = errors.New("cannot format overlapping stones")

// FormatBoard writes own and opp in the compact form ParseBoard reads.
func FormatBoard(own, opp uint64) (string, error) {
	if own&opp != 0 {
		return "", errOverlap
	}
	var rows []string
	for row := bitboard.Size - 1; row >= 0; row-- {
		var out []byte
		empty := 0
		for col := 0; col < bitboard.Size; col++ {
			bit := uint64(1) << uint(row*bitboard.Size+col)
			if (own|opp)&bit == 0 {
				empty++
				continue
			}
			if empty > 0 {
				out = append(out, byte('0'+empty))
				empty = 0
			}
			if own&bit != 0 {
				out = append(out, 'X')
			} else {
				out = append(out, 'O')
			}
		}
		if empty > 0 {
			out = append(out, byte('0'+empty))
		}
		rows = append(rows, string(out))
	}
	return strings.Join(rows, "/"), nil
}

// Diagram renders a labelled grid for humans, highest row at the top.
// Squares in marks that are empty are drawn as '*'.
func Diagram(own, opp, marks uint64) string {
	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	for row := bitboard.Size - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%d", row+1)
		for col := 0; col < bitboard.Size; col++ {
			bit := uint64(1) << uint(row*bitboard.Size+col)
			c := '.'
			switch {
			case own&bit != 0:
				c = 'X'
			case opp&bit != 0:
				c = 'O'
			case marks&bit != 0:
				c = '*'
			}
			fmt.Fprintf(&b, " %c", c)
		}
		b.WriteString("\n")
	}
	return b.String()
}
