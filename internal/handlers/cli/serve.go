package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcmonitor/internal/handlers/rest"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// serveCommand returns the command that runs the HTTP API and the poll loop
// side by side. Addresses listed in the configuration are registered at
// startup; the rest are managed through the API.
//
// Usage example:
//
//	btcmonitor serve --listen :8080
func serveCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API together with the poll loop",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Address the API listens on",
			},
		}, watchFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := st.cfg
			if cmd.IsSet("listen") {
				cfg.API.Listen = cmd.String("listen")
			}

			if err := applyWatchFlags(cmd, &cfg); err != nil {
				return cli.Exit(err, exitUsage)
			}

			settings, err := cfg.NotifySettings()
			if err != nil {
				return cli.Exit(err, exitUsage)
			}

			a, err := st.start(ctx, cfg, cfg.Addresses)
			if err != nil {
				return err
			}
			defer closeApp(ctx, a)

			server := rest.NewServer(rest.Dependencies{
				Registry:  a.Registry,
				Watcher:   a.Watcher,
				Inspector: a.Inspector,
				Alerter:   a.Alerter,
				Params:    cfg.ChainParams(),
				Settings:  settings,
			})

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				if err := a.Watcher.Run(gctx); err != nil {
					return fmt.Errorf("poll loop: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				if err := server.ListenAndServe(gctx, cfg.API.Listen); err != nil {
					return fmt.Errorf("api: %w", err)
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return cli.Exit(err, exitFailure)
			}

			logger.Info(ctx, "server stopped")
			return nil
		},
	}
}
