// Package btcaddr classifies Bitcoin address strings by encoding.
//
// Decoding and checksum verification are delegated to btcutil; this package
// only maps the decoded address type onto the three encodings the monitor
// reports: legacy (P2PKH), SegWit (P2SH) and Bech32 (native witness programs,
// including taproot).
package btcaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ErrInvalidAddress is returned when a string is not a usable address for the
// configured network.
var ErrInvalidAddress = errors.New("invalid bitcoin address")

// ErrUnknownNetwork is returned by ParseNetwork for unsupported names.
var ErrUnknownNetwork = errors.New("unknown bitcoin network")

// Kind is the encoding family of an address.
type Kind string

const (
	Invalid Kind = "invalid"
	Legacy  Kind = "legacy"
	SegWit  Kind = "segwit"
	Bech32  Kind = "bech32"
)

// Valid reports whether k denotes a usable address.
func (k Kind) Valid() bool {
	return k == Legacy || k == SegWit || k == Bech32
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseNetwork maps a network name to its chain parameters.
func ParseNetwork(name string) (*chaincfg.Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
}

// Classify returns the encoding of address on the given network, or Invalid
// when it cannot be decoded, belongs to another network or is not a standard
// payment address.
func Classify(address string, params *chaincfg.Params) Kind {
	if address == "" || strings.TrimSpace(address) != address {
		return Invalid
	}

	decoded, err := btcutil.DecodeAddress(address, params)
	if err != nil || !decoded.IsForNet(params) {
		return Invalid
	}

	switch decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		return Legacy
	case *btcutil.AddressScriptHash:
		return SegWit
	case *btcutil.AddressWitnessPubKeyHash, *btcutil.AddressWitnessScriptHash, *btcutil.AddressTaproot:
		return Bech32
	default:
		return Invalid
	}
}

// Validate is Classify with an error for invalid input, wrapping ErrInvalidAddress.
func Validate(address string, params *chaincfg.Params) (Kind, error) {
	kind := Classify(address, params)
	if !kind.Valid() {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	return kind, nil
}
