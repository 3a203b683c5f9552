package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcmonitor/internal/btcaddr"

	"github.com/urfave/cli/v3"
)

// validateCommand prints the kind of each address, one per line.
//
// Usage example:
//
//	btcmonitor validate 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
func validateCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check addresses and print their kind",
		ArgsUsage: "<address>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			addresses := cmd.Args().Slice()
			if len(addresses) == 0 {
				return cli.Exit(errNoAddresses, exitUsage)
			}

			params := st.cfg.ChainParams()
			out := cmd.Root().Writer

			var invalid int
			for _, address := range addresses {
				kind := btcaddr.Classify(address, params)
				if !kind.Valid() {
					invalid++
				}
				fmt.Fprintf(out, "%s\t%s\n", address, kind)
			}

			if invalid > 0 {
				return cli.Exit(fmt.Sprintf("%d invalid %s address(es)", invalid, params.Name), exitFailure)
			}
			return nil
		},
	}
}
