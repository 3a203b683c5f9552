package txwatch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/btcmonitor/internal/txwatch"

// metrics groups the instruments emitted by the poll cycle. They are no-ops
// unless a MeterProvider is registered (see internal/pkg/telemetry).
type metrics struct {
	cycles          metric.Int64Counter
	fetchFailures   metric.Int64Counter
	newTransactions metric.Int64Counter
	cycleDuration   metric.Float64Histogram
}

func newMetrics() metrics {
	m, err := buildMetrics(otel.Meter(instrumentationName))
	if err != nil {
		m, _ = buildMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return m
}

func buildMetrics(meter metric.Meter) (metrics, error) {
	var (
		m   metrics
		err error
	)

	if m.cycles, err = meter.Int64Counter("btcmonitor.poll.cycles",
		metric.WithDescription("Completed poll cycles")); err != nil {
		return m, err
	}

	if m.fetchFailures, err = meter.Int64Counter("btcmonitor.fetch.failures",
		metric.WithDescription("Address checks that failed after retries")); err != nil {
		return m, err
	}

	if m.newTransactions, err = meter.Int64Counter("btcmonitor.transactions.new",
		metric.WithDescription("Transactions reported as new")); err != nil {
		return m, err
	}

	if m.cycleDuration, err = meter.Float64Histogram("btcmonitor.poll.duration",
		metric.WithDescription("Poll cycle duration"),
		metric.WithUnit("s")); err != nil {
		return m, err
	}

	return m, nil
}

// observe records a finished cycle.
func (m metrics) observe(ctx context.Context, report CycleReport) {
	m.cycles.Add(ctx, 1)
	m.cycleDuration.Record(ctx, report.Duration().Seconds())
	if report.NewTransactions > 0 {
		m.newTransactions.Add(ctx, int64(report.NewTransactions))
	}
	if n := len(report.Failures); n > 0 {
		m.fetchFailures.Add(ctx, int64(n))
	}
}
