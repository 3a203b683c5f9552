// Package cli is the command-line entry point of btcmonitor.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/btcmonitor/internal/app"
	"github.com/gabapcia/btcmonitor/internal/config"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// ConfigFileEnv names the environment variable read when --config is absent.
const ConfigFileEnv = config.EnvPrefix + "_CONFIG_FILE"

// state carries what the Before hook prepares for the subcommands.
type state struct {
	build app.BuildFunc
	cfg   config.Config
}

type options struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures Run.
type Option func(*options)

// WithWriter redirects command output.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithErrWriter redirects error output and logs.
func WithErrWriter(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// Run parses args and executes the matching command:
//
//   - `monitor`: watches addresses until the context is cancelled.
//   - `serve`: runs the HTTP API together with the poll loop.
//   - `validate`: classifies addresses without monitoring them.
//
// build assembles the services once the configuration is known. Failures
// come back as cli.ExitCoder values carrying the process exit code.
func Run(ctx context.Context, args []string, build app.BuildFunc, opts ...Option) error {
	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	st := &state{build: build}

	root := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "btcmonitor",
		Version:               app.Version,
		Usage:                 "Watch Bitcoin addresses and get notified about new transactions.",
		Writer:                o.stdout,
		ErrWriter:             o.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file, layered over BTCMONITOR_* variables",
				Sources: cli.EnvVars(ConfigFileEnv),
			},
			&cli.StringFlag{
				Name:  "network",
				Usage: "Bitcoin network: mainnet, testnet, signet or regtest",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug entries in console format",
			},
		},
		Commands: []*cli.Command{
			monitorCommand(st),
			serveCommand(st),
			validateCommand(st),
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	// Root flags are persistent, so they are only fully parsed once the
	// subcommand is known.
	for _, cmd := range root.Commands {
		cmd.Before = st.before
	}

	return root.Run(ctx, args)
}

// before loads the configuration and initializes logging for a subcommand.
func (st *state) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, cli.Exit(err, exitFailure)
	}

	if cmd.IsSet("network") {
		cfg.Network = cmd.String("network")
		if err := cfg.Validate(); err != nil {
			return ctx, cli.Exit(err, exitUsage)
		}
	}

	if cmd.Bool("verbose") {
		cfg.Log.Level = "debug"
		cfg.Log.Format = logger.FormatConsole
	}

	if err := logger.Init(
		logger.WithLevel(cfg.Log.Level),
		logger.WithFormat(cfg.Log.Format),
		logger.WithOutput(cmd.Root().ErrWriter),
	); err != nil {
		return ctx, cli.Exit(err, exitFailure)
	}

	st.cfg = cfg
	return ctx, nil
}

// start builds the services and registers addresses. The returned App must
// be closed by the caller.
func (st *state) start(ctx context.Context, cfg config.Config, addresses []string) (*app.App, error) {
	a, err := st.build(ctx, cfg)
	if err != nil {
		return nil, cli.Exit(err, exitFailure)
	}

	if err := a.RegisterAll(ctx, addresses); err != nil {
		closeApp(ctx, a)
		return nil, cli.Exit(err, exitFailure)
	}

	return a, nil
}

func closeApp(ctx context.Context, a *app.App) {
	if err := a.Close(context.WithoutCancel(ctx)); err != nil {
		logger.Warn(ctx, "failed to release resources", "error", err)
	}
	_ = logger.Sync()
}
