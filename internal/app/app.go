// Package app assembles the monitor from its configuration: storage backend,
// provider clients, registry, poll loop, alerting and address lookups.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/config"
	"github.com/gabapcia/btcmonitor/internal/infra/blockchain/esplora"
	"github.com/gabapcia/btcmonitor/internal/infra/price/coingecko"
	"github.com/gabapcia/btcmonitor/internal/infra/storage/memory"
	"github.com/gabapcia/btcmonitor/internal/infra/storage/redis"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/pkg/resilience/retry"
	"github.com/gabapcia/btcmonitor/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/btcmonitor/internal/pkg/transport/http"
	"github.com/gabapcia/btcmonitor/internal/txalert"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Version is reported by the CLI and tagged on telemetry resources.
var Version = "dev"

// App holds the wired services.
type App struct {
	Config    config.Config
	Registry  addrregistry.Service
	Watcher   txwatch.Service
	Alerter   *txalert.Alerter
	Inspector addrinfo.Service

	closers []func(context.Context) error
}

// BuildFunc creates an App from a validated configuration.
type BuildFunc func(ctx context.Context, cfg config.Config) (*App, error)

// Build is the production BuildFunc.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{Config: cfg}

	if err := a.build(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	return a, nil
}

func (a *App) build(ctx context.Context) error {
	cfg := a.Config
	params := cfg.ChainParams()

	if cfg.Telemetry.Enabled {
		opts := []telemetry.Option{telemetry.WithServiceVersion(Version)}
		if cfg.Telemetry.Endpoint != "" {
			opts = append(opts, telemetry.WithEndpoint(cfg.Telemetry.Endpoint))
		}
		if cfg.Telemetry.Insecure {
			opts = append(opts, telemetry.WithInsecure())
		}

		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, opts...)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		a.closers = append(a.closers, shutdown)
	}

	storage, err := a.newStorage(ctx)
	if err != nil {
		return err
	}

	settings, err := cfg.NotifySettings()
	if err != nil {
		return err
	}

	notifier, err := notify.New(settings)
	if err != nil {
		return err
	}

	providerURL := cfg.Provider.BaseURL
	if providerURL == "" {
		providerURL = esplora.DefaultBaseURL(cfg.Network)
	}

	pollHTTP, lookupHTTP := providerClients(cfg)
	pollChain := esplora.NewClient(providerURL, pollHTTP)
	lookupChain := esplora.NewClient(providerURL, lookupHTTP)

	a.Registry = addrregistry.New(storage, params)
	a.Alerter = txalert.New(notifier)

	watchOpts := []txwatch.Option{
		txwatch.WithInterval(cfg.PollInterval),
		txwatch.WithRetry(retry.New(
			retry.WithAttempts(cfg.Retry.Attempts),
			retry.WithDelay(cfg.Retry.Delay),
			retry.WithMaxDelay(cfg.Retry.MaxDelay),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "provider request failed, retrying", "attempt", attempt+1, "error", err)
			}),
		)),
	}
	if cfg.NotifyExisting {
		watchOpts = append(watchOpts, txwatch.WithNotifyExisting())
	}
	a.Watcher = txwatch.New(a.Registry, pollChain, a.Alerter, watchOpts...)

	var prices addrinfo.PriceSource
	if cfg.Price.Enabled {
		prices = coingecko.NewClient(cfg.Price.BaseURL, cfg.Price.APIKey, transporthttp.NewClient(
			transporthttp.WithUserAgent(cfg.Provider.UserAgent),
		))
	}
	a.Inspector = addrinfo.New(lookupChain, lookupChain, prices, a.Registry, params, addrinfo.WithPriceTTL(cfg.Price.CacheTTL))

	logger.Info(ctx, "services initialized",
		"network", cfg.Network,
		"provider", providerURL,
		"storage", cfg.Storage.Backend,
		"channels", cfg.Notify.Channels,
	)

	return nil
}

// providerClients builds the chain provider HTTP clients. Poll fetches are
// retried by the watcher, so the poll client makes one attempt per request;
// lookups keep Provider.Retries. Both draw from one rate limiter.
func providerClients(cfg config.Config) (poll, lookup *retryablehttp.Client) {
	opts := []transporthttp.Option{
		transporthttp.WithTimeout(cfg.Provider.Timeout),
		transporthttp.WithUserAgent(cfg.Provider.UserAgent),
	}
	if cfg.Provider.MinRequestInterval > 0 {
		limiter := rate.NewLimiter(rate.Every(cfg.Provider.MinRequestInterval), 1)
		opts = append(opts, transporthttp.WithLimiter(limiter))
	}

	poll = transporthttp.NewClient(append(slices.Clone(opts), transporthttp.WithRetryMax(0))...)
	lookup = transporthttp.NewClient(append(slices.Clone(opts), transporthttp.WithRetryMax(cfg.Provider.Retries))...)

	return poll, lookup
}

func (a *App) newStorage(ctx context.Context) (addrregistry.AddressStorage, error) {
	cfg := a.Config

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithNamespace(cfg.Network))
		if err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		return client, nil
	default:
		return memory.NewAddressStorage(), nil
	}
}

// Close releases connections and flushes telemetry, in reverse creation order.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}

// RegisterAll registers addresses, stopping at the first failure.
func (a *App) RegisterAll(ctx context.Context, addresses []string) error {
	for _, address := range addresses {
		entry, created, err := a.Registry.Register(ctx, address)
		if err != nil {
			return fmt.Errorf("register %s: %w", address, err)
		}

		if created {
			logger.Info(ctx, "monitoring address", "address", entry.Address, "kind", entry.Kind)
		} else {
			logger.Info(ctx, "address already monitored", "address", entry.Address, "known_transactions", entry.KnownTxIDs.Len())
		}
	}

	return nil
}
