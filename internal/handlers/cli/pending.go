package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

var errNoJournal = errors.New("no transaction journal configured, set REDIS_ADDR")

// pendingCommand returns a CLI command that prints the transactions a
// previous run left in flight.
func pendingCommand(pending PendingLister) *cli.Command {
	return &cli.Command{
		Name:        "pending",
		Description: "Lists transactions still recorded in the journal.",
		Usage:       "Prints id, chain, nonce, state and hash of each journaled transaction.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if pending == nil {
				return errNoJournal
			}

			list, err := pending.ListPending(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCHAIN ID\tNONCE\tSTATE\tHASH")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", p.ID, p.ChainID, p.Nonce, p.State, p.Hash.Hex())
			}
			return w.Flush()
		},
	}
}
