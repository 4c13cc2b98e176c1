package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

// networksCommand returns a CLI command that prints every network the bridge
// can switch to.
func networksCommand(networks NetworkLister) *cli.Command {
	return &cli.Command{
		Name:        "networks",
		Description: "Lists the networks available to wallet_switchEthereumChain.",
		Usage:       "Prints chain id, hex chain id and name of each known network.",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CHAIN ID\tHEX\tNAME")
			for _, n := range networks.List() {
				fmt.Fprintf(w, "%d\t0x%x\t%s\n", n.ChainID, n.ChainID, n.Name)
			}
			return w.Flush()
		},
	}
}
