package txwatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/pkg/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PollOnce implements Service.
func (s *service) PollOnce(ctx context.Context) CycleReport {
	report := newCycleReport(s.clock.Now())

	ctx, span := s.tracer.Start(ctx, "txwatch.PollOnce",
		trace.WithAttributes(attribute.String("cycle.id", report.ID)))
	defer span.End()

	entries, err := s.registry.List(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list monitored addresses", "cycle_id", report.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list addresses")

		report.Err = err
		report.FinishedAt = s.clock.Now()
		return report
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		reported, err := s.checkAddress(ctx, entry)
		if err != nil {
			logger.Error(ctx, "failed to check address", "address", entry.Address, "error", err)
			report.recordFailure(entry.Address, err)
			continue
		}

		report.Checked++
		report.NewTransactions += reported
	}

	report.FinishedAt = s.clock.Now()
	s.metrics.observe(ctx, report)

	span.SetAttributes(
		attribute.Int("cycle.checked", report.Checked),
		attribute.Int("cycle.new_transactions", report.NewTransactions),
		attribute.Int("cycle.failures", len(report.Failures)),
	)

	logger.Debug(ctx, "poll cycle finished",
		"cycle_id", report.ID,
		"checked", report.Checked,
		"new_transactions", report.NewTransactions,
		"failures", len(report.Failures),
		"duration", report.Duration(),
	)

	return report
}

// checkAddress fetches the transactions of entry, reports the unseen ones and
// records them as known. It returns how many transactions were handed to
// the handler.
func (s *service) checkAddress(ctx context.Context, entry addrregistry.MonitoredAddress) (int, error) {
	var txs []Transaction
	err := s.retry.Execute(ctx, func() error {
		var err error
		txs, err = s.fetcher.FetchTransactions(ctx, entry.Address)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	delta := newTransactions(entry.KnownTxIDs, txs)

	// The first successful check of an address only establishes its history.
	baseline := !entry.Checked() && !s.notifyExisting
	if baseline && len(delta) > 0 {
		logger.Info(ctx, "recorded existing transactions", "address", entry.Address, "count", len(delta))
	}

	reported := 0
	if !baseline && len(delta) > 0 {
		reported = len(delta)
		logger.Info(ctx, "new transactions detected", "address", entry.Address, "count", reported)

		if err := s.handler.HandleNewTransactions(ctx, entry.Address, delta); err != nil {
			logger.Error(ctx, "failed to handle new transactions", "address", entry.Address, "error", err)
		}
	}

	ids := make([]string, len(delta))
	for i, tx := range delta {
		ids[i] = tx.ID
	}

	if err := s.registry.RecordCheck(ctx, entry.Address, ids); err != nil {
		if errors.Is(err, addrregistry.ErrAddressNotMonitored) {
			logger.Info(ctx, "address removed during check", "address", entry.Address)
			return 0, nil
		}
		return 0, err
	}

	return reported, nil
}

// newTransactions returns the transactions of fetched whose ID is not in
// known, keeping the provider order and dropping duplicates.
func newTransactions(known types.Set[string], fetched []Transaction) []Transaction {
	seen := types.NewSet[string]()

	var delta []Transaction
	for _, tx := range fetched {
		if tx.ID == "" || known.Has(tx.ID) || seen.Has(tx.ID) {
			continue
		}

		seen.Add(tx.ID)
		delta = append(delta, tx)
	}

	return delta
}
