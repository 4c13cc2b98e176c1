package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that runs the bridge server until an
// interrupt (SIGINT or SIGTERM) arrives or ctx is cancelled.
//
// Usage example:
//
//	walletbridge serve
func serveCommand(srv Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the wallet provider and serves it over JSON-RPC with a server-sent event stream.",
		Usage:       "Runs the bridge server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := srv.Start(ctx); err != nil {
				return err
			}
			defer srv.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
