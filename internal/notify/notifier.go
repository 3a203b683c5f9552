// Package notify delivers short human-readable messages through one or more
// channels: the terminal, the desktop notification center of the host OS and
// email.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned when a channel is selected but its
	// settings are missing or malformed.
	ErrInvalidConfiguration = errors.New("invalid notification configuration")

	// ErrUnsupportedPlatform is returned when OS-native notifications are not
	// available on the running platform.
	ErrUnsupportedPlatform = errors.New("os-native notifications are not supported on this platform")
)

// Notifier delivers a titled message.
type Notifier interface {
	Deliver(ctx context.Context, title, message string) error
}

// Channel names a delivery mechanism.
type Channel string

const (
	ChannelConsole  Channel = "console"
	ChannelOSNative Channel = "os-native"
	ChannelEmail    Channel = "email"
)

// Channels lists every supported channel.
var Channels = []Channel{ChannelConsole, ChannelOSNative, ChannelEmail}

// ParseChannel converts a user supplied name into a Channel.
func ParseChannel(name string) (Channel, error) {
	ch := Channel(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Channels, ch) {
		return "", fmt.Errorf("%w: unknown channel %q", ErrInvalidConfiguration, name)
	}
	return ch, nil
}

// ParseChannels parses a list of names, dropping duplicates.
func ParseChannels(names []string) ([]Channel, error) {
	out := make([]Channel, 0, len(names))
	for _, name := range names {
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, ch) {
			out = append(out, ch)
		}
	}
	return out, nil
}

// Settings selects the channels to build and carries their configuration.
type Settings struct {
	Channels []Channel
	SMTP     SMTPSettings
}

// Has reports whether ch is selected.
func (s Settings) Has(ch Channel) bool {
	return slices.Contains(s.Channels, ch)
}

// config holds optional dependencies for New.
type config struct {
	console io.Writer
	desktop func() (*Desktop, error)
	email   func(SMTPSettings) (*Email, error)
}

// Option customizes New.
type Option func(*config)

// WithConsoleOutput sets where the console channel writes. Default: os.Stdout.
func WithConsoleOutput(w io.Writer) Option {
	return func(c *config) {
		c.console = w
	}
}

// New builds the notifier described by settings.
//
// Channel configuration is checked here, so a missing SMTP field or an
// unsupported platform is reported before the first delivery. With no
// channel selected the console channel is used. Several channels are
// combined with Multi.
func New(settings Settings, opts ...Option) (Notifier, error) {
	cfg := config{
		console: os.Stdout,
		desktop: NewDesktop,
		email:   NewEmail,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	channels := settings.Channels
	if len(channels) == 0 {
		channels = []Channel{ChannelConsole}
	}

	var notifiers []Notifier
	for _, ch := range channels {
		switch ch {
		case ChannelConsole:
			notifiers = append(notifiers, NewConsole(cfg.console))
		case ChannelOSNative:
			d, err := cfg.desktop()
			if err != nil {
				return nil, err
			}
			notifiers = append(notifiers, d)
		case ChannelEmail:
			e, err := cfg.email(settings.SMTP)
			if err != nil {
				return nil, err
			}
			notifiers = append(notifiers, e)
		default:
			return nil, fmt.Errorf("%w: unknown channel %q", ErrInvalidConfiguration, ch)
		}
	}

	if len(notifiers) == 1 {
		return notifiers[0], nil
	}
	return NewMulti(notifiers...), nil
}
