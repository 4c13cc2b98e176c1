// Package cli is the walletbridge command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/txtracker"

	"github.com/urfave/cli/v3"
)

// Server is a long-running process started by the serve command.
type Server interface {
	Start(ctx context.Context) error
	Close()
}

// NetworkLister lists the networks the bridge can switch to.
type NetworkLister interface {
	List() []networkregistry.Network
}

// PendingLister reads transactions left in flight by a previous run.
type PendingLister interface {
	ListPending(ctx context.Context) ([]txtracker.PendingTransaction, error)
}

// Run initializes and executes the walletbridge CLI application.
//
// It registers all available commands:
//
//   - `serve`: Starts the JSON-RPC server.
//   - `call`: Sends a single request to a running server.
//   - `networks`: Lists the known networks.
//   - `pending`: Lists journaled in-flight transactions.
//
// pending may be nil when no journal is configured.
func Run(ctx context.Context, srv Server, networks NetworkLister, pending PendingLister) error {
	return run(ctx, os.Args, os.Stdout, srv, networks, pending)
}

func run(ctx context.Context, args []string, out io.Writer, srv Server, networks NetworkLister, pending PendingLister) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletbridge",
		Description:           "EIP-1193 wallet provider backed by a local key, served over JSON-RPC.",
		Usage:                 "walletbridge [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			serveCommand(srv),
			callCommand(),
			networksCommand(networks),
			pendingCommand(pending),
		},
	}

	return app.Run(ctx, args)
}
