package cli

import (
	"slices"
	"time"

	"github.com/gabapcia/btcmonitor/internal/config"
	"github.com/gabapcia/btcmonitor/internal/notify"

	"github.com/urfave/cli/v3"
)

// watchFlags are shared by the commands that run the poll loop.
func watchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "interval",
			Usage: "Seconds between poll cycles",
		},
		&cli.StringSliceFlag{
			Name:  "notify",
			Usage: "Notification channel: console, os-native or email (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "email-notify",
			Usage: "Notify by email; alone it replaces the default channels, with --notify it adds email",
		},
		&cli.StringFlag{
			Name:  "smtp-server",
			Usage: "SMTP host",
		},
		&cli.IntFlag{
			Name:  "smtp-port",
			Usage: "SMTP port, 465 dials TLS directly",
		},
		&cli.BoolFlag{
			Name:  "starttls",
			Usage: "Upgrade a plain SMTP connection with STARTTLS",
		},
		&cli.StringFlag{
			Name:  "email-from",
			Usage: "Sender address, also the SMTP user",
		},
		&cli.StringFlag{
			Name:    "email-password",
			Usage:   "SMTP password",
			Sources: cli.EnvVars(config.EnvPrefix + "_SMTP_PASSWORD"),
		},
		&cli.StringFlag{
			Name:  "email-to",
			Usage: "Recipient address",
		},
		&cli.BoolFlag{
			Name:  "notify-existing",
			Usage: "Notify about transactions already present at the first check",
		},
	}
}

// applyWatchFlags overrides cfg with the flags set on cmd and validates the result.
func applyWatchFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("interval") {
		cfg.PollInterval = time.Duration(cmd.Int("interval")) * time.Second
	}

	if cmd.IsSet("notify") {
		cfg.Notify.Channels = cmd.StringSlice("notify")
	}
	switch {
	case !cmd.Bool("email-notify"):
	case !cmd.IsSet("notify"):
		cfg.Notify.Channels = []string{string(notify.ChannelEmail)}
	case !slices.Contains(cfg.Notify.Channels, string(notify.ChannelEmail)):
		cfg.Notify.Channels = append(slices.Clone(cfg.Notify.Channels), string(notify.ChannelEmail))
	}

	if cmd.IsSet("smtp-server") {
		cfg.SMTP.Host = cmd.String("smtp-server")
	}
	if cmd.IsSet("smtp-port") {
		cfg.SMTP.Port = int(cmd.Int("smtp-port"))
	}
	if cmd.IsSet("starttls") {
		cfg.SMTP.StartTLS = cmd.Bool("starttls")
	}
	if cmd.IsSet("email-from") {
		cfg.SMTP.From = cmd.String("email-from")
	}
	if cmd.IsSet("email-password") {
		cfg.SMTP.Password = cmd.String("email-password")
	}
	if cmd.IsSet("email-to") {
		cfg.SMTP.To = cmd.String("email-to")
	}

	if cmd.Bool("notify-existing") {
		cfg.NotifyExisting = true
	}

	return cfg.Validate()
}
