package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

var errNoAddresses = errors.New("at least one address is required")

// monitorCommand returns the command that watches addresses in the foreground.
//
// Usage example:
//
//	btcmonitor monitor --interval 30 --notify os-native bc1q... 1A1z...
//
// Every address is validated before anything is monitored. The process runs
// until it receives SIGINT or SIGTERM and then exits cleanly.
func monitorCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "monitor",
		Usage:     "Watch addresses and notify about new transactions",
		ArgsUsage: "<address>...",
		Flags:     watchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := st.cfg

			addresses := cmd.Args().Slice()
			if len(addresses) == 0 {
				addresses = cfg.Addresses
			}
			if len(addresses) == 0 {
				return cli.Exit(errNoAddresses, exitUsage)
			}

			if err := validateAll(cmd, addresses, cfg.ChainParams()); err != nil {
				return cli.Exit(err, exitFailure)
			}

			if err := applyWatchFlags(cmd, &cfg); err != nil {
				return cli.Exit(err, exitUsage)
			}

			a, err := st.start(ctx, cfg, addresses)
			if err != nil {
				return err
			}
			defer closeApp(ctx, a)

			logger.Info(ctx, "addresses registered",
				"addresses", len(addresses),
				"interval", a.Watcher.Interval(),
			)

			if err := a.Watcher.Run(ctx); err != nil {
				return cli.Exit(err, exitFailure)
			}

			return nil
		},
	}
}

// validateAll reports every invalid address on the error writer.
func validateAll(cmd *cli.Command, addresses []string, params *chaincfg.Params) error {
	var invalid int
	for _, address := range addresses {
		if _, err := btcaddr.Validate(address, params); err != nil {
			fmt.Fprintf(cmd.Root().ErrWriter, "invalid %s address: %s\n", params.Name, address)
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d addresses rejected", btcaddr.ErrInvalidAddress, invalid, len(addresses))
	}
	return nil
}
