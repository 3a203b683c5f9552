package txwatch

import (
	"context"

	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/pkg/x/chflow"
)

// Run implements Service.
func (s *service) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServiceAlreadyStarted
	}
	defer s.running.Store(false)

	logger.Info(ctx, "monitoring started", "interval", s.Interval())

	for {
		report := s.PollOnce(ctx)
		s.storeReport(report)

		if ctx.Err() != nil {
			break
		}

		interval := s.Interval()
		logger.Info(ctx, "cycle complete",
			"checked", report.Checked,
			"new_transactions", report.NewTransactions,
			"failures", len(report.Failures),
			"next_check_in", interval,
		)

		if _, ok := chflow.Receive(ctx, s.clock.TickAfter(interval)); !ok {
			break
		}
	}

	logger.Info(ctx, "monitoring stopped")
	return nil
}
