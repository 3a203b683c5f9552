package txwatch

import (
	"context"
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrregistry"
)

// Transaction is a Bitcoin transaction as reported by the data provider.
// Values are in satoshis.
type Transaction struct {
	ID          string
	Confirmed   bool
	BlockHeight int64
	BlockTime   time.Time // zero while unconfirmed
	Fee         int64
	Inputs      []TxInput
	Outputs     []TxOutput
}

// TxInput is a spent previous output.
type TxInput struct {
	Address string // empty for coinbase or non-standard scripts
	Value   int64
}

// TxOutput is a newly created output.
type TxOutput struct {
	Address string // empty for OP_RETURN and non-standard scripts
	Value   int64
}

// NetValue returns how many satoshis address gained (positive) or lost
// (negative) in the transaction.
func (t Transaction) NetValue(address string) int64 {
	var net int64
	for _, out := range t.Outputs {
		if out.Address == address {
			net += out.Value
		}
	}
	for _, in := range t.Inputs {
		if in.Address == address {
			net -= in.Value
		}
	}
	return net
}

// TransactionFetcher retrieves the current transaction list of an address
// from an external provider.
type TransactionFetcher interface {
	// FetchTransactions returns the transactions the provider currently
	// reports for address, most recent first.
	FetchTransactions(ctx context.Context, address string) ([]Transaction, error)
}

// TransactionHandler is invoked with every non-empty transaction delta.
type TransactionHandler interface {
	// HandleNewTransactions receives the transactions of address that were
	// not known before the current check. A returned error is logged and does
	// not prevent the delta from being recorded as known.
	HandleNewTransactions(ctx context.Context, address string, delta []Transaction) error
}

// Registry is the subset of the Address Registry the poll cycle depends on.
type Registry interface {
	List(ctx context.Context) ([]addrregistry.MonitoredAddress, error)
	RecordCheck(ctx context.Context, address string, txIDs []string) error
}
