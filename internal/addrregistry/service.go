package addrregistry

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/clock"
)

// Service defines the Address Registry: the set of Bitcoin addresses under
// watch together with the transaction IDs already seen for each of them.
//
// Implementations validate addresses before they reach the AddressStorage and
// never resurrect an entry that was removed.
type Service interface {
	// Register starts monitoring address.
	//
	// The address is validated first; an invalid address returns an error
	// wrapping btcaddr.ErrInvalidAddress and leaves the registry unchanged.
	// Registering an address twice is idempotent: the existing entry, including
	// its known transaction IDs, is returned and created is false.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - address: the Bitcoin address to monitor.
	//
	// Returns:
	//   - The stored entry, whether it was created, and an error if
	//     validation or persistence fails.
	Register(ctx context.Context, address string) (entry MonitoredAddress, created bool, err error)

	// Unregister stops monitoring address and forgets its known transaction IDs.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - address: the Bitcoin address to stop monitoring.
	//
	// Returns:
	//   - ErrAddressNotMonitored when the address is not registered.
	Unregister(ctx context.Context, address string) error

	// Get returns the entry for address or ErrAddressNotMonitored.
	Get(ctx context.Context, address string) (MonitoredAddress, error)

	// List returns every monitored address ordered by address.
	List(ctx context.Context) ([]MonitoredAddress, error)

	// RecordCheck merges txIDs into the known set of address and stamps
	// LastChecked.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - address: the address that was checked.
	//   - txIDs: the transaction IDs returned by the provider.
	//
	// Returns:
	//   - ErrAddressNotMonitored, without recreating the entry, when the
	//     address was removed in the meantime.
	RecordCheck(ctx context.Context, address string, txIDs []string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage AddressStorage
	params  *chaincfg.Params
	clock   clock.Clock
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds optional settings for New.
type config struct {
	clock clock.Clock
}

// Option configures the registry service.
type Option func(*config)

// WithClock replaces the wall clock used for AddedAt and LastChecked.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// New creates a registry backed by storage that accepts addresses of the
// network described by params.
func New(storage AddressStorage, params *chaincfg.Params, opts ...Option) *service {
	cfg := config{
		clock: clock.NewDefaultClock(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		storage: storage,
		params:  params,
		clock:   cfg.clock,
	}
}

// now returns the current time in UTC, truncated to the microsecond so it
// round-trips through every storage backend unchanged.
func (s *service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
