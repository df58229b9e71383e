package rei

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/reversi/rei"
)

type Command struct{}

func (*Command) Name() string     { return "rei" }
func (*Command) Synopsis() string { return "Answer board queries on stdin/stdout" }
func (*Command) Usage() string {
	return `rei

Run the line protocol on stdin and stdout, for use by a host process
that drives the board operations over a pipe.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine := rei.NewEngine(os.Stdin, os.Stdout)
	if err := engine.Run(ctx); err != nil {
		log.Println("rei: ", err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
