package addrinfo

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
)

// AddressStats are the aggregated funding counters reported by the provider.
// Values are in satoshis.
type AddressStats struct {
	ConfirmedFunded  int64
	ConfirmedSpent   int64
	ConfirmedTxCount int
	MempoolFunded    int64
	MempoolSpent     int64
	MempoolTxCount   int
}

// Balance derives the confirmed and pending balance.
func (s AddressStats) Balance() Balance {
	return Balance{
		Confirmed:   btcutil.Amount(s.ConfirmedFunded - s.ConfirmedSpent),
		Unconfirmed: btcutil.Amount(s.MempoolFunded - s.MempoolSpent),
	}
}

// Balance of an address.
type Balance struct {
	Confirmed   btcutil.Amount
	Unconfirmed btcutil.Amount // may be negative while a spend is pending
}

// Total returns confirmed plus pending.
func (b Balance) Total() btcutil.Amount {
	return b.Confirmed + b.Unconfirmed
}

// Info is the result of Lookup.
type Info struct {
	Address            string
	Kind               btcaddr.Kind
	Monitored          bool
	Balance            Balance
	FiatValue          *float64 // nil when no price is available
	FiatCurrency       string
	TxCount            int
	RecentTransactions []txwatch.Transaction
}
