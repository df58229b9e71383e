package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/reversi/cmd/internal/rei"
	"github.com/nelhage/reversi/cmd/internal/serve"
	"github.com/nelhage/reversi/cmd/internal/show"
	"github.com/nelhage/reversi/cmd/internal/verify"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&serve.Command{}, "")
	subcommands.Register(&rei.Command{}, "")
	subcommands.Register(&show.Command{}, "")
	subcommands.Register(&verify.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
