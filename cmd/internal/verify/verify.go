package verify

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/reversi/notation"
	"github.com/nelhage/reversi/reversi"
	"github.com/nelhage/reversi/reversitest"
)

type Command struct {
	seed      int64
	positions int
	games     int
	threads   int
}

func (*Command) Name() string     { return "verify" }
func (*Command) Synopsis() string { return "Cross-check the board operations on random positions" }
func (*Command) Usage() string {
	return `verify [flags]

Check that the bulk move generator, the per-square flip computation and
a square-by-square reference implementation agree, on random stone
masks and on positions reached by random play.

`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.Int64Var(&c.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flags.IntVar(&c.positions, "positions", 100000, "random masks to check")
	flags.IntVar(&c.games, "games", 1000, "random games to play out and check")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of threads")
}

const prime = 1099511628211

type counts struct {
	positions int64
	games     int64
	checked   int64
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}
	log.Printf("verify seed=%d threads=%d", c.seed, c.threads)

	todo := counts{positions: int64(c.positions), games: int64(c.games)}
	start := time.Now()
	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.threads; i++ {
		id := i
		grp.Go(func() error {
			return c.worker(ctx, &todo, id)
		})
	}
	if err := grp.Wait(); err != nil {
		log.Printf("verify failed: %v", err)
		return subcommands.ExitFailure
	}
	log.Printf("checked %d positions in %s", atomic.LoadInt64(&todo.checked), time.Since(start))
	return subcommands.ExitSuccess
}

func (c *Command) worker(ctx context.Context, todo *counts, id int) error {
	rng := rand.New(rand.NewSource(prime*c.seed + int64(id)))
	for atomic.AddInt64(&todo.positions, -1) >= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		own, opp := reversitest.RandomPosition(rng)
		if err := check(own, opp); err != nil {
			return err
		}
		atomic.AddInt64(&todo.checked, 1)
	}
	for atomic.AddInt64(&todo.games, -1) >= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := playout(rng)
		atomic.AddInt64(&todo.checked, int64(n))
		if err != nil {
			return err
		}
	}
	return nil
}

func check(own, opp uint64) error {
	if err := reversitest.Check(own, opp); err != nil {
		return fmt.Errorf("own=%s opp=%s: %w",
			notation.FormatBits(own), notation.FormatBits(opp), err)
	}
	return nil
}

// playout plays random legal moves from the start position until
// neither side can move, checking each position on the way.
func playout(rng *rand.Rand) (int, error) {
	own, opp := reversi.Start()
	n := 0
	for passes := 0; passes < 2; {
		if err := check(own, opp); err != nil {
			return n, err
		}
		n++
		moves := reversi.MoveList(own, opp)
		if len(moves) == 0 {
			passes++
		} else {
			passes = 0
			own, opp = reversi.ApplyMove(own, opp, moves[rng.Intn(len(moves))])
		}
		own, opp = opp, own
	}
	return n, nil
}
