// Package txalert turns transaction deltas into user notifications.
package txalert

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
)

// Title is the notification title of every transaction alert.
const Title = "New Bitcoin Transaction"

// timeLayout renders block times.
const timeLayout = "2006-01-02 15:04:05 MST"

// Alerter delivers one notification per new transaction.
type Alerter struct {
	mu       sync.RWMutex
	notifier notify.Notifier
}

var _ txwatch.TransactionHandler = (*Alerter)(nil)

// New returns an Alerter delivering through n.
func New(n notify.Notifier) *Alerter {
	return &Alerter{notifier: n}
}

// SetNotifier swaps the notifier used for subsequent alerts.
func (a *Alerter) SetNotifier(n notify.Notifier) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notifier = n
}

// Notifier returns the current notifier.
func (a *Alerter) Notifier() notify.Notifier {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.notifier
}

// HandleNewTransactions implements txwatch.TransactionHandler. Every
// transaction is delivered even if an earlier one failed; failures are joined.
func (a *Alerter) HandleNewTransactions(ctx context.Context, address string, delta []txwatch.Transaction) error {
	n := a.Notifier()
	if n == nil {
		return nil
	}

	var errs []error
	for _, tx := range delta {
		if err := n.Deliver(ctx, Title, FormatTransaction(address, tx)); err != nil {
			errs = append(errs, fmt.Errorf("deliver %s: %w", tx.ID, err))
		}
	}

	return errors.Join(errs...)
}

// FormatTransaction renders the alert body for tx from the point of view of
// address:
//
//	Address bc1q...
//	received 0.00150000 BTC
//	Tx: 4a5e1e...
//	Time: 2025-01-03 18:15:05 UTC
//	Status: confirmed in block 877000
func FormatTransaction(address string, tx txwatch.Transaction) string {
	net := tx.NetValue(address)

	action := "sent"
	if net > 0 {
		action = "received"
	}

	amount := btcutil.Amount(net)
	if amount < 0 {
		amount = -amount
	}

	when := "Unknown"
	if !tx.BlockTime.IsZero() {
		when = tx.BlockTime.UTC().Format(timeLayout)
	}

	status := "unconfirmed"
	if tx.Confirmed {
		status = "confirmed"
		if tx.BlockHeight > 0 {
			status += " in block " + strconv.FormatInt(tx.BlockHeight, 10)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Address %s\n", address)
	fmt.Fprintf(&b, "%s %s BTC\n", action, FormatBTC(amount))
	fmt.Fprintf(&b, "Tx: %s\n", tx.ID)
	fmt.Fprintf(&b, "Time: %s\n", when)
	fmt.Fprintf(&b, "Status: %s", status)

	return b.String()
}

// FormatBTC renders amount in BTC with eight decimals.
func FormatBTC(amount btcutil.Amount) string {
	return strconv.FormatFloat(amount.ToBTC(), 'f', 8, 64)
}
