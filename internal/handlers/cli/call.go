package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	httptransport "github.com/gabapcia/walletbridge/internal/pkg/transport/http"
	"github.com/gabapcia/walletbridge/internal/pkg/transport/jsonrpc"

	"github.com/urfave/cli/v3"
)

const defaultEndpoint = "http://localhost:8545"

var errMissingMethod = errors.New("missing method name")

// callCommand returns a CLI command that sends one request to a running
// server and prints the result.
//
// Every argument after the method is sent as JSON when it parses as JSON and
// as a plain string otherwise.
//
// Usage example:
//
//	walletbridge call eth_getBalance 0xabc... latest
func callCommand() *cli.Command {
	return &cli.Command{
		Name:        "call",
		Description: "Sends a single JSON-RPC request to a running walletbridge server.",
		Usage:       "Calls METHOD with the given params and prints the JSON result.",
		ArgsUsage:   "METHOD [PARAMS...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "URL of the walletbridge server",
				Value: defaultEndpoint,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout",
				Value: 30 * time.Second,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			method := c.Args().First()
			if method == "" {
				return errMissingMethod
			}

			client := jsonrpc.NewClient(
				httptransport.NewStandardClient(
					httptransport.WithTimeout(c.Duration("timeout")),
					httptransport.WithRetryMax(0),
				),
				c.String("endpoint"),
			)

			result, err := client.Fetch(ctx, method, callParams(c.Args().Tail())...)
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := json.Indent(&out, result, "", "  "); err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, out.String())
			return err
		},
	}
}

func callParams(args []string) []any {
	params := make([]any, len(args))
	for i, arg := range args {
		if json.Valid([]byte(arg)) {
			params[i] = json.RawMessage(arg)
		} else {
			params[i] = arg
		}
	}
	return params
}
