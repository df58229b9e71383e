package serve

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"

	"github.com/nelhage/reversi/server"
)

type Command struct {
	port  int
	debug bool
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve the board operations via GRPC" }
func (*Command) Usage() string {
	return `serve [-port N]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.BoolVar(&c.debug, "debug", false, "log every request")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Printf("failed to listen: %v", err)
		return subcommands.ExitFailure
	}
	grpcServer := server.NewServer(&server.Kernel{Debug: c.debug})

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
