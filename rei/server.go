package rei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nelhage/reversi/bitboard"
	"github.com/nelhage/reversi/notation"
	"github.com/nelhage/reversi/reversi"
)

// Engine speaks a line protocol over a pair of streams, so that a host
// process can drive the board operations through a pipe. Masks may be
// written in hex (0x...) or decimal; squares as an index or a
// coordinate such as "d3". Replies carry squares as indices.
type Engine struct {
	in  *bufio.Reader
	out io.Writer
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run processes commands until EOF or "quit". A malformed request is
// answered with an "error" line and the session continues; an unknown
// command ends it. If a command panics, the panic is reported on the
// output and returned as an error.
func (e *Engine) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(e.out, "error internal: %v\n", r)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := e.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && line == "" {
			return nil
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "rei":
			fmt.Fprintln(e.out, "id name reversi")
			fmt.Fprintln(e.out, "reiok")
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		case "quit":
			return nil
		case "legal", "hasmove", "flips", "groups", "apply", "popcount":
			if err := e.command(words); err != nil {
				fmt.Fprintf(e.out, "error %s: %v\n", words[0], err)
			}
		default:
			return fmt.Errorf("Unknown command: %q", strings.TrimSpace(line))
		}
	}
}

func (e *Engine) command(words []string) error {
	args := words[1:]
	switch words[0] {
	case "popcount":
		if len(args) != 1 {
			return errors.New("expected <bits>")
		}
		x, err := notation.ParseBits(args[0])
		if err != nil {
			return fmt.Errorf("bad bits: %w", err)
		}
		fmt.Fprintf(e.out, "popcount %d\n", reversi.Popcount(x))
	case "legal", "hasmove":
		if len(args) != 2 {
			return errors.New("expected <own> <opp>")
		}
		own, opp, err := parseBoard(args)
		if err != nil {
			return err
		}
		if words[0] == "hasmove" {
			fmt.Fprintf(e.out, "hasmove %t\n", reversi.HasLegalMove(own, opp))
			return nil
		}
		moves := reversi.LegalMoves(own, opp)
		fmt.Fprintf(e.out, "legal %s%s\n", notation.FormatBits(moves),
			formatSquares(bitboard.Squares(moves, nil)))
	default:
		if len(args) != 3 {
			return errors.New("expected <own> <opp> <square>")
		}
		own, opp, err := parseBoard(args)
		if err != nil {
			return err
		}
		sq, err := notation.ParseSquare(args[2])
		if err != nil {
			return err
		}
		switch words[0] {
		case "flips":
			fmt.Fprintf(e.out, "flips %s\n", notation.FormatBits(reversi.FlipMask(own, opp, sq)))
		case "groups":
			for d, g := range reversi.FlipGroups(own, opp, sq) {
				fmt.Fprintf(e.out, "group %s%s\n", bitboard.Direction(d), formatSquares(g))
			}
		case "apply":
			nown, nopp := reversi.ApplyMove(own, opp, sq)
			fmt.Fprintf(e.out, "board %s %s\n", notation.FormatBits(nown), notation.FormatBits(nopp))
		}
	}
	return nil
}

func parseBoard(args []string) (own, opp uint64, err error) {
	own, err = notation.ParseBits(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad own: %w", err)
	}
	opp, err = notation.ParseBits(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad opp: %w", err)
	}
	if err := reversi.Validate(own, opp); err != nil {
		return 0, 0, err
	}
	return own, opp, nil
}

func formatSquares(sqs []uint8) string {
	var b strings.Builder
	for _, s := range sqs {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}
