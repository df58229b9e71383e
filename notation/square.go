package notation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nelhage/reversi/reversi"
)

var ErrBadSquare = errors.New("bad square")

// ParseSquare accepts either a coordinate, column letter then row
// number ("a1" is square 0, "h8" square 63), or a decimal index.
func ParseSquare(s string) (reversi.Square, error) {
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8' {
		return reversi.At(int(s[1]-'1'), int(s[0]-'a')), nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	sq, err := reversi.CheckSquare(i)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return sq, nil
}

func FormatSquare(sq reversi.Square) string {
	return string([]byte{byte('a' + sq.Col()), byte('1' + sq.Row())})
}

// ParseBits parses a mask written in any base strconv understands,
// typically hex with a 0x prefix.
func ParseBits(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func FormatBits(x uint64) string {
	return fmt.Sprintf("0x%016x", x)
}
