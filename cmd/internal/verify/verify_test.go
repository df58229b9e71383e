package verify

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/subcommands"
)

func TestVerify(t *testing.T) {
	c := &Command{seed: 11, positions: 500, games: 20, threads: 4}
	if st := c.Execute(context.Background(), nil); st != subcommands.ExitSuccess {
		t.Fatalf("verify: %v", st)
	}
}

func TestPlayout(t *testing.T) {
	n, err := playout(rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	// At most 60 moves, each of which may be followed by a pass, plus
	// the final position. The shortest possible game is 9 moves.
	if n < 10 || n > 122 {
		t.Fatalf("playout checked %d positions", n)
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Command{seed: 1, positions: 10, games: 1, threads: 1}
	if st := c.Execute(ctx, nil); st != subcommands.ExitFailure {
		t.Fatalf("cancelled verify: %v", st)
	}
}
