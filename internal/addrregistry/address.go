package addrregistry

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/pkg/types"
)

// ErrAddressNotMonitored is returned when an operation targets an address
// that is not registered.
var ErrAddressNotMonitored = errors.New("address not monitored")

// MonitoredAddress is the registry entry of a watched address.
//
// KnownTxIDs only grows while the entry exists; removing the address deletes
// the entry entirely, so registering it again starts from an empty set.
type MonitoredAddress struct {
	Address     string
	Kind        btcaddr.Kind
	KnownTxIDs  types.Set[string]
	AddedAt     time.Time
	LastChecked time.Time // zero until the first successful poll
}

// Checked reports whether the address has been polled successfully at least once.
func (m MonitoredAddress) Checked() bool {
	return !m.LastChecked.IsZero()
}

// AddressStorage is the persistence contract of the registry.
//
// Implementations must be safe for concurrent use and return entries whose
// KnownTxIDs can be mutated by the caller without affecting stored state.
type AddressStorage interface {
	// Insert stores entry unless its address already exists. It returns the
	// stored entry and whether it was inserted by this call.
	Insert(ctx context.Context, entry MonitoredAddress) (MonitoredAddress, bool, error)

	// Delete removes address and its known IDs, or returns ErrAddressNotMonitored.
	Delete(ctx context.Context, address string) error

	// Get returns the entry for address or ErrAddressNotMonitored.
	Get(ctx context.Context, address string) (MonitoredAddress, error)

	// List returns all entries in no particular order.
	List(ctx context.Context) ([]MonitoredAddress, error)

	// MergeKnown adds txIDs to the known set of address and sets its
	// LastChecked to checkedAt. It returns ErrAddressNotMonitored when the
	// address does not exist and must not create it.
	MergeKnown(ctx context.Context, address string, txIDs []string, checkedAt time.Time) error
}

// Register implements Service.
func (s *service) Register(ctx context.Context, address string) (MonitoredAddress, bool, error) {
	kind, err := btcaddr.Validate(address, s.params)
	if err != nil {
		return MonitoredAddress{}, false, err
	}

	return s.storage.Insert(ctx, MonitoredAddress{
		Address:    address,
		Kind:       kind,
		KnownTxIDs: types.NewSet[string](),
		AddedAt:    s.now(),
	})
}

// Unregister implements Service.
func (s *service) Unregister(ctx context.Context, address string) error {
	return s.storage.Delete(ctx, address)
}

// Get implements Service.
func (s *service) Get(ctx context.Context, address string) (MonitoredAddress, error) {
	return s.storage.Get(ctx, address)
}

// List implements Service.
func (s *service) List(ctx context.Context) ([]MonitoredAddress, error) {
	entries, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(entries, func(a, b MonitoredAddress) int {
		return strings.Compare(a.Address, b.Address)
	})

	return entries, nil
}

// RecordCheck implements Service.
func (s *service) RecordCheck(ctx context.Context, address string, txIDs []string) error {
	return s.storage.MergeKnown(ctx, address, txIDs, s.now())
}
