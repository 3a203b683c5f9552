// Package config loads runtime settings from BTCMONITOR_* environment
// variables, optionally overlaid by a YAML file, and validates them.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/pkg/validator"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "BTCMONITOR"

// Storage backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the full runtime configuration of the monitor.
type Config struct {
	Network        string        `envconfig:"NETWORK" default:"mainnet" yaml:"network" validate:"oneof=mainnet testnet signet regtest"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"60s" yaml:"poll_interval" validate:"gt=0"`
	NotifyExisting bool          `envconfig:"NOTIFY_EXISTING" yaml:"notify_existing"`
	Addresses      []string      `envconfig:"ADDRESSES" yaml:"addresses"`

	Notify    Notify    `envconfig:"NOTIFY" yaml:"notify"`
	SMTP      SMTP      `envconfig:"SMTP" yaml:"smtp"`
	Provider  Provider  `envconfig:"PROVIDER" yaml:"provider"`
	Retry     Retry     `envconfig:"RETRY" yaml:"retry"`
	Price     Price     `envconfig:"PRICE" yaml:"price"`
	Storage   Storage   `envconfig:"STORAGE" yaml:"storage"`
	Redis     Redis     `envconfig:"REDIS" yaml:"redis"`
	API       API       `envconfig:"API" yaml:"api"`
	Log       Log       `envconfig:"LOG" yaml:"log"`
	Telemetry Telemetry `envconfig:"TELEMETRY" yaml:"telemetry"`
}

// Notify selects the alert channels (console, email, desktop).
type Notify struct {
	Channels []string `envconfig:"CHANNELS" default:"console" yaml:"channels"`
}

// SMTP holds the email channel settings. Port 465 uses implicit TLS unless
// StartTLS is set.
type SMTP struct {
	Host     string `envconfig:"HOST" yaml:"host"`
	Port     int    `envconfig:"PORT" default:"465" yaml:"port" validate:"min=0,max=65535"`
	From     string `envconfig:"FROM" yaml:"from"`
	Password string `envconfig:"PASSWORD" yaml:"password"`
	To       string `envconfig:"TO" yaml:"to"`
	StartTLS bool   `envconfig:"STARTTLS" yaml:"starttls"`
}

// Provider configures the HTTP client of the Esplora chain provider. An
// empty BaseURL selects the public endpoint of the configured network.
type Provider struct {
	BaseURL            string        `envconfig:"BASE_URL" yaml:"base_url" validate:"omitempty,url"`
	Timeout            time.Duration `envconfig:"TIMEOUT" default:"15s" yaml:"timeout" validate:"gt=0"`
	MinRequestInterval time.Duration `envconfig:"MIN_REQUEST_INTERVAL" default:"1s" yaml:"min_request_interval" validate:"gte=0"`
	Retries            int           `envconfig:"RETRIES" default:"2" yaml:"retries" validate:"gte=0"`
	UserAgent          string        `envconfig:"USER_AGENT" default:"btcmonitor" yaml:"user_agent"`
}

// Retry bounds the exponential backoff applied to failed poll fetches.
type Retry struct {
	Attempts uint          `envconfig:"ATTEMPTS" default:"3" yaml:"attempts" validate:"gte=1"`
	Delay    time.Duration `envconfig:"DELAY" default:"1s" yaml:"delay" validate:"gt=0"`
	MaxDelay time.Duration `envconfig:"MAX_DELAY" default:"30s" yaml:"max_delay" validate:"gtefield=Delay"`
}

// Price configures the USD price lookup used by address info.
type Price struct {
	Enabled  bool          `envconfig:"ENABLED" default:"true" yaml:"enabled"`
	BaseURL  string        `envconfig:"BASE_URL" yaml:"base_url" validate:"omitempty,url"`
	APIKey   string        `envconfig:"API_KEY" yaml:"api_key"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m" yaml:"cache_ttl" validate:"gte=0"`
}

// Storage selects the address registry backend.
type Storage struct {
	Backend string `envconfig:"BACKEND" default:"memory" yaml:"backend" validate:"oneof=memory redis"`
}

// Redis holds the connection settings of the redis backend.
type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" yaml:"addr" validate:"required"`
	Username string `envconfig:"USERNAME" yaml:"username"`
	Password string `envconfig:"PASSWORD" yaml:"password"`
	DB       int    `envconfig:"DB" default:"0" yaml:"db" validate:"gte=0"`
}

// API configures the REST server.
type API struct {
	Listen string `envconfig:"LISTEN" default:":8080" yaml:"listen" validate:"required"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `envconfig:"LEVEL" default:"info" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"json" yaml:"format" validate:"oneof=json console"`
}

// Telemetry configures the OTLP trace and metric exporters.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" yaml:"enabled"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"btcmonitor" yaml:"service_name" validate:"required"`
	Endpoint    string `envconfig:"ENDPOINT" yaml:"endpoint"`
	Insecure    bool   `envconfig:"INSECURE" yaml:"insecure"`
}

// Load reads the environment and, when path is not empty, overlays the YAML
// file at path. Keys present in the file win over the environment.
func Load(path string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that the selected notification
// channels are fully configured.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if _, err := c.NotifySettings(); err != nil {
		return err
	}

	return nil
}

// ChainParams returns the parameters of the configured network.
func (c Config) ChainParams() *chaincfg.Params {
	params, err := btcaddr.ParseNetwork(c.Network)
	if err != nil {
		return &chaincfg.MainNetParams
	}
	return params
}

// NotifySettings converts the notification section for notify.New.
func (c Config) NotifySettings() (notify.Settings, error) {
	channels, err := notify.ParseChannels(c.Notify.Channels)
	if err != nil {
		return notify.Settings{}, err
	}

	settings := notify.Settings{
		Channels: channels,
		SMTP: notify.SMTPSettings{
			Host:     c.SMTP.Host,
			Port:     c.SMTP.Port,
			From:     c.SMTP.From,
			Password: c.SMTP.Password,
			To:       c.SMTP.To,
			StartTLS: c.SMTP.StartTLS,
		},
	}

	if settings.Has(notify.ChannelEmail) {
		if err := validator.Validate(settings.SMTP); err != nil {
			return notify.Settings{}, fmt.Errorf("%w: smtp: %w", notify.ErrInvalidConfiguration, err)
		}
	}

	return settings, nil
}

// Redacted returns a copy without secrets, suitable for logs and the API.
func (c Config) Redacted() Config {
	const mask = "***"

	if c.SMTP.Password != "" {
		c.SMTP.Password = mask
	}
	if c.Redis.Password != "" {
		c.Redis.Password = mask
	}
	if c.Price.APIKey != "" {
		c.Price.APIKey = mask
	}
	c.Addresses = append([]string(nil), c.Addresses...)
	c.Notify.Channels = append([]string(nil), c.Notify.Channels...)

	return c
}
