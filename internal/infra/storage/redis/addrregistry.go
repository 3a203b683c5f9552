package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/pkg/types"

	"github.com/redis/go-redis/v9"
)

const (
	// addrregistryKeyPrefix is the Redis key namespace of the address registry.
	addrregistryKeyPrefix = "addrregistry"

	// mergeKnownMaxAttempts bounds the optimistic-lock retries of MergeKnown.
	mergeKnownMaxAttempts = 5
)

// addressesKey returns the hash holding one JSON document per address.
//
// Format: "addrregistry:{namespace}:addresses"
func (c *client) addressesKey() string {
	return fmt.Sprintf("%s:%s:addresses", addrregistryKeyPrefix, c.namespace)
}

// knownKey returns the set of transaction IDs already seen for address.
//
// Format: "addrregistry:{namespace}:known:{address}"
func (c *client) knownKey(address string) string {
	return fmt.Sprintf("%s:%s:known:%s", addrregistryKeyPrefix, c.namespace, address)
}

// addressDocument is the JSON value stored in the addresses hash.
type addressDocument struct {
	Kind        btcaddr.Kind `json:"kind"`
	AddedAt     time.Time    `json:"added_at"`
	LastChecked time.Time    `json:"last_checked"`
}

func encodeDocument(entry addrregistry.MonitoredAddress) (string, error) {
	raw, err := json.Marshal(addressDocument{
		Kind:        entry.Kind,
		AddedAt:     entry.AddedAt,
		LastChecked: entry.LastChecked,
	})
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func decodeDocument(address, raw string, known []string) (addrregistry.MonitoredAddress, error) {
	var doc addressDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return addrregistry.MonitoredAddress{}, fmt.Errorf("decode %s: %w", address, err)
	}

	return addrregistry.MonitoredAddress{
		Address:     address,
		Kind:        doc.Kind,
		KnownTxIDs:  types.NewSet(known...),
		AddedAt:     doc.AddedAt,
		LastChecked: doc.LastChecked,
	}, nil
}

// Insert implements addrregistry.AddressStorage using HSETNX, so concurrent
// registrations of the same address resolve to a single entry.
func (c *client) Insert(ctx context.Context, entry addrregistry.MonitoredAddress) (addrregistry.MonitoredAddress, bool, error) {
	doc, err := encodeDocument(entry)
	if err != nil {
		return addrregistry.MonitoredAddress{}, false, err
	}

	created, err := c.conn.HSetNX(ctx, c.addressesKey(), entry.Address, doc).Result()
	if err != nil {
		return addrregistry.MonitoredAddress{}, false, err
	}

	if !created {
		existing, err := c.Get(ctx, entry.Address)
		return existing, false, err
	}

	if entry.KnownTxIDs.Len() > 0 {
		if err := c.conn.SAdd(ctx, c.knownKey(entry.Address), toAny(entry.KnownTxIDs.ToSlice())...).Err(); err != nil {
			return addrregistry.MonitoredAddress{}, false, err
		}
	}

	entry.KnownTxIDs = entry.KnownTxIDs.Clone()
	return entry, true, nil
}

// Delete implements addrregistry.AddressStorage. The entry and its known set
// are removed in one MULTI/EXEC block.
func (c *client) Delete(ctx context.Context, address string) error {
	var removed *redis.IntCmd
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, c.addressesKey(), address)
		pipe.Del(ctx, c.knownKey(address))
		return nil
	})
	if err != nil {
		return err
	}

	if removed.Val() == 0 {
		return addrregistry.ErrAddressNotMonitored
	}

	return nil
}

// Get implements addrregistry.AddressStorage.
func (c *client) Get(ctx context.Context, address string) (addrregistry.MonitoredAddress, error) {
	raw, err := c.conn.HGet(ctx, c.addressesKey(), address).Result()
	if errors.Is(err, redis.Nil) {
		return addrregistry.MonitoredAddress{}, addrregistry.ErrAddressNotMonitored
	}
	if err != nil {
		return addrregistry.MonitoredAddress{}, err
	}

	known, err := c.conn.SMembers(ctx, c.knownKey(address)).Result()
	if err != nil {
		return addrregistry.MonitoredAddress{}, err
	}

	return decodeDocument(address, raw, known)
}

// List implements addrregistry.AddressStorage. Known sets are fetched in a
// single pipeline.
func (c *client) List(ctx context.Context) ([]addrregistry.MonitoredAddress, error) {
	docs, err := c.conn.HGetAll(ctx, c.addressesKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return []addrregistry.MonitoredAddress{}, nil
	}

	members := make(map[string]*redis.StringSliceCmd, len(docs))
	_, err = c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for address := range docs {
			members[address] = pipe.SMembers(ctx, c.knownKey(address))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]addrregistry.MonitoredAddress, 0, len(docs))
	for address, raw := range docs {
		entry, err := decodeDocument(address, raw, members[address].Val())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// MergeKnown implements addrregistry.AddressStorage.
//
// The addresses hash is WATCHed while the entry is read, so a concurrent
// Delete aborts the transaction instead of letting it recreate the entry.
func (c *client) MergeKnown(ctx context.Context, address string, txIDs []string, checkedAt time.Time) error {
	key := c.addressesKey()

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, address).Result()
		if errors.Is(err, redis.Nil) {
			return addrregistry.ErrAddressNotMonitored
		}
		if err != nil {
			return err
		}

		var doc addressDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return fmt.Errorf("decode %s: %w", address, err)
		}
		doc.LastChecked = checkedAt

		updated, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(txIDs) > 0 {
				pipe.SAdd(ctx, c.knownKey(address), toAny(txIDs)...)
			}
			pipe.HSet(ctx, key, address, string(updated))
			return nil
		})
		return err
	}

	for range mergeKnownMaxAttempts {
		err := c.conn.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("merge known transactions of %s: %w", address, redis.TxFailedErr)
}

// toAny converts a string slice to the variadic form expected by go-redis.
func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Compile-time assertion to ensure *client satisfies the addrregistry.AddressStorage interface.
var _ addrregistry.AddressStorage = new(client)
