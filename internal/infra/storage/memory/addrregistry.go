// Package memory provides process-local implementations of the storage
// contracts. State is lost when the process exits.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/pkg/types"
)

// AddressStorage keeps registry entries in a map guarded by a mutex.
type AddressStorage struct {
	mu      sync.RWMutex
	entries map[string]addrregistry.MonitoredAddress
}

// Compile-time assertion to ensure *AddressStorage satisfies addrregistry.AddressStorage.
var _ addrregistry.AddressStorage = (*AddressStorage)(nil)

// NewAddressStorage returns an empty storage.
func NewAddressStorage() *AddressStorage {
	return &AddressStorage{
		entries: make(map[string]addrregistry.MonitoredAddress),
	}
}

// clone detaches the known set so callers cannot mutate stored state.
func clone(entry addrregistry.MonitoredAddress) addrregistry.MonitoredAddress {
	entry.KnownTxIDs = entry.KnownTxIDs.Clone()
	return entry
}

// Insert implements addrregistry.AddressStorage.
func (s *AddressStorage) Insert(_ context.Context, entry addrregistry.MonitoredAddress) (addrregistry.MonitoredAddress, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[entry.Address]; ok {
		return clone(existing), false, nil
	}

	entry = clone(entry)
	s.entries[entry.Address] = entry

	return clone(entry), true, nil
}

// Delete implements addrregistry.AddressStorage.
func (s *AddressStorage) Delete(_ context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[address]; !ok {
		return addrregistry.ErrAddressNotMonitored
	}

	delete(s.entries, address)
	return nil
}

// Get implements addrregistry.AddressStorage.
func (s *AddressStorage) Get(_ context.Context, address string) (addrregistry.MonitoredAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[address]
	if !ok {
		return addrregistry.MonitoredAddress{}, addrregistry.ErrAddressNotMonitored
	}

	return clone(entry), nil
}

// List implements addrregistry.AddressStorage.
func (s *AddressStorage) List(_ context.Context) ([]addrregistry.MonitoredAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]addrregistry.MonitoredAddress, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, clone(entry))
	}

	return entries, nil
}

// MergeKnown implements addrregistry.AddressStorage.
func (s *AddressStorage) MergeKnown(_ context.Context, address string, txIDs []string, checkedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[address]
	if !ok {
		return addrregistry.ErrAddressNotMonitored
	}

	if entry.KnownTxIDs == nil {
		entry.KnownTxIDs = types.NewSet[string]()
	}
	entry.KnownTxIDs.Add(txIDs...)
	entry.LastChecked = checkedAt
	s.entries[address] = entry

	return nil
}
