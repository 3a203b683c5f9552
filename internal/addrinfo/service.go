// Package addrinfo answers on-demand questions about a single address:
// balance, fiat value, transaction count and recent activity.
package addrinfo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
	"github.com/lightningnetwork/lnd/clock"
)

const (
	// DefaultRecentLimit caps the transactions returned by Lookup.
	DefaultRecentLimit = 10

	// DefaultPriceTTL is how long a fetched price is reused.
	DefaultPriceTTL = 5 * time.Minute

	// Currency is the fiat currency prices are quoted in.
	Currency = "usd"
)

// ErrLookupFailed wraps provider failures during Lookup.
var ErrLookupFailed = errors.New("address lookup failed")

// StatsFetcher returns aggregated on-chain statistics of an address.
type StatsFetcher interface {
	FetchAddressStats(ctx context.Context, address string) (AddressStats, error)
}

// PriceSource quotes one BTC in a fiat currency.
type PriceSource interface {
	BTCPrice(ctx context.Context, currency string) (float64, error)
}

// MonitorLookup tells whether an address is being monitored.
type MonitorLookup interface {
	Get(ctx context.Context, address string) (addrregistry.MonitoredAddress, error)
}

// Service looks up address details.
type Service interface {
	// Lookup validates address and gathers its details. Invalid addresses
	// return btcaddr.ErrInvalidAddress; provider failures ErrLookupFailed.
	// The fiat value is omitted when no price is available.
	Lookup(ctx context.Context, address string) (Info, error)
}

type service struct {
	stats    StatsFetcher
	txs      txwatch.TransactionFetcher
	prices   PriceSource
	registry MonitorLookup
	params   *chaincfg.Params

	recentLimit int
	price       *priceCache
}

var _ Service = (*service)(nil)

type config struct {
	clock       clock.Clock
	priceTTL    time.Duration
	recentLimit int
}

// Option configures the service.
type Option func(*config)

// WithClock replaces the clock used for price expiry.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithPriceTTL sets how long a fetched price is reused.
func WithPriceTTL(d time.Duration) Option {
	return func(cfg *config) {
		cfg.priceTTL = d
	}
}

// WithRecentLimit caps the number of recent transactions returned.
func WithRecentLimit(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.recentLimit = n
		}
	}
}

// New creates the lookup service. prices and registry may be nil.
func New(stats StatsFetcher, txs txwatch.TransactionFetcher, prices PriceSource, registry MonitorLookup, params *chaincfg.Params, opts ...Option) *service {
	cfg := config{
		clock:       clock.NewDefaultClock(),
		priceTTL:    DefaultPriceTTL,
		recentLimit: DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		stats:       stats,
		txs:         txs,
		prices:      prices,
		registry:    registry,
		params:      params,
		recentLimit: cfg.recentLimit,
		price:       &priceCache{clock: cfg.clock, ttl: cfg.priceTTL},
	}
}

// Lookup implements Service.
func (s *service) Lookup(ctx context.Context, address string) (Info, error) {
	kind, err := btcaddr.Validate(address, s.params)
	if err != nil {
		return Info{}, err
	}

	stats, err := s.stats.FetchAddressStats(ctx, address)
	if err != nil {
		return Info{}, fmt.Errorf("%w: stats: %w", ErrLookupFailed, err)
	}

	txs, err := s.txs.FetchTransactions(ctx, address)
	if err != nil {
		return Info{}, fmt.Errorf("%w: transactions: %w", ErrLookupFailed, err)
	}
	if len(txs) > s.recentLimit {
		txs = txs[:s.recentLimit]
	}

	info := Info{
		Address:            address,
		Kind:               kind,
		Balance:            stats.Balance(),
		TxCount:            stats.ConfirmedTxCount + stats.MempoolTxCount,
		RecentTransactions: txs,
		Monitored:          s.monitored(ctx, address),
	}

	if price, ok := s.btcPrice(ctx); ok {
		value := info.Balance.Total().ToBTC() * price
		info.FiatValue = &value
		info.FiatCurrency = Currency
	}

	return info, nil
}

func (s *service) monitored(ctx context.Context, address string) bool {
	if s.registry == nil {
		return false
	}

	_, err := s.registry.Get(ctx, address)
	if err != nil && !errors.Is(err, addrregistry.ErrAddressNotMonitored) {
		logger.Warn(ctx, "failed to read registry", "address", address, "error", err)
	}
	return err == nil
}

func (s *service) btcPrice(ctx context.Context) (float64, bool) {
	if s.prices == nil {
		return 0, false
	}

	return s.price.get(ctx, func(ctx context.Context) (float64, error) {
		return s.prices.BTCPrice(ctx, Currency)
	})
}

// priceCache memoizes the last quote for ttl. A stale quote is served when
// refreshing fails.
type priceCache struct {
	clock clock.Clock
	ttl   time.Duration

	mu        sync.Mutex
	value     float64
	fetchedAt time.Time
}

func (c *priceCache) get(ctx context.Context, fetch func(context.Context) (float64, error)) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < c.ttl {
		return c.value, true
	}

	value, err := fetch(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to fetch BTC price", "error", err)
		return c.value, !c.fetchedAt.IsZero()
	}

	c.value = value
	c.fetchedAt = now
	return value, true
}
