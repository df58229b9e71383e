package show

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/subcommands"

	"github.com/nelhage/reversi/bitboard"
	"github.com/nelhage/reversi/notation"
	"github.com/nelhage/reversi/reversi"
)

type Command struct {
	board  string
	own    string
	opp    string
	square string
}

func (*Command) Name() string     { return "show" }
func (*Command) Synopsis() string { return "Print legal moves or the result of a move" }
func (*Command) Usage() string {
	return `show [-board BOARD | -own MASK -opp MASK] [-square SQ]

Print the position with its legal moves marked. With -square, print the
stones the move captures, direction by direction, and the position after
it. With no position, the start position is used.

`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.board, "board", "", "position, e.g. 8/8/8/3XO3/3OX3/8/8/8")
	flags.StringVar(&c.own, "own", "", "mask of the side to move")
	flags.StringVar(&c.opp, "opp", "", "mask of the opponent")
	flags.StringVar(&c.square, "square", "", "square to play, e.g. d3 or 19")
}

func (c *Command) position() (own, opp uint64, err error) {
	switch {
	case c.board != "":
		own, opp, err = notation.ParseBoard(c.board)
		if err != nil {
			return 0, 0, err
		}
	case c.own != "" || c.opp != "":
		if own, err = notation.ParseBits(c.own); err != nil {
			return 0, 0, fmt.Errorf("-own: %w", err)
		}
		if opp, err = notation.ParseBits(c.opp); err != nil {
			return 0, 0, fmt.Errorf("-opp: %w", err)
		}
	default:
		own, opp = reversi.Start()
	}
	return own, opp, reversi.Validate(own, opp)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	own, opp, err := c.position()
	if err != nil {
		log.Printf("bad position: %v", err)
		return subcommands.ExitUsageError
	}
	moves := reversi.LegalMoves(own, opp)
	if c.square == "" {
		fmt.Print(notation.Diagram(own, opp, moves))
		var names []string
		for _, sq := range reversi.MoveList(own, opp) {
			names = append(names, notation.FormatSquare(sq))
		}
		x, o := reversi.Score(own, opp)
		fmt.Printf("score %d-%d, %d moves: %s\n", x, o, len(names), strings.Join(names, " "))
		return subcommands.ExitSuccess
	}

	sq, err := notation.ParseSquare(c.square)
	if err != nil {
		log.Printf("bad square: %v", err)
		return subcommands.ExitUsageError
	}
	if moves&sq.Bit() == 0 {
		log.Printf("%s is not a legal move", notation.FormatSquare(sq))
		return subcommands.ExitFailure
	}
	for d, g := range reversi.FlipGroups(own, opp, sq) {
		if len(g) == 0 {
			continue
		}
		var names []string
		for _, s := range g {
			names = append(names, notation.FormatSquare(reversi.Square(s)))
		}
		fmt.Printf("%-2s %s\n", bitboard.Direction(d), strings.Join(names, " "))
	}
	nown, nopp := reversi.ApplyMove(own, opp, sq)
	fmt.Print(notation.Diagram(nown, nopp, 0))
	board, err := notation.FormatBoard(nown, nopp)
	if err != nil {
		log.Printf("format: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s own=%s opp=%s\n", board, notation.FormatBits(nown), notation.FormatBits(nopp))
	return subcommands.ExitSuccess
}
