// Package txwatch implements the poll cycle of the monitor: for every
// registered address it fetches the current transaction list, computes the
// delta against the known transaction IDs, hands the delta to a
// TransactionHandler and records the new IDs as known.
package txwatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/btcmonitor/internal/pkg/resilience/retry"
	"github.com/lightningnetwork/lnd/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultInterval is the pause between two poll cycles.
const DefaultInterval = 60 * time.Second

var (
	// ErrServiceAlreadyStarted is returned by Run when the loop is already active.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrInvalidInterval is returned when a non-positive poll interval is set.
	ErrInvalidInterval = errors.New("poll interval must be positive")

	// ErrFetchFailed wraps provider failures that survived every retry.
	ErrFetchFailed = errors.New("failed to fetch transactions")
)

// Service runs poll cycles over the Address Registry.
type Service interface {
	// PollOnce checks every registered address once, sequentially.
	//
	// A failure on one address is logged and recorded in the report; the
	// remaining addresses are still checked.
	//
	// Parameters:
	//   - ctx: controls cancellation of the provider requests.
	//
	// Returns:
	//   - A CycleReport with the counts of checked addresses, failures and
	//     new transactions.
	PollOnce(ctx context.Context) CycleReport

	// Run executes poll cycles until ctx is done, sleeping Interval between
	// them.
	//
	// Parameters:
	//   - ctx: stops the loop when cancelled.
	//
	// Returns:
	//   - nil on cancellation, or ErrServiceAlreadyStarted when another Run
	//     is active.
	Run(ctx context.Context) error

	// Interval returns the current pause between cycles.
	Interval() time.Duration

	// SetInterval changes the pause between cycles. The new value is used
	// from the next sleep on.
	//
	// Parameters:
	//   - d: the new interval, must be positive.
	//
	// Returns:
	//   - ErrInvalidInterval if d is not positive.
	SetInterval(d time.Duration) error

	// Running reports whether Run is active.
	Running() bool

	// LastReport returns the report of the most recent cycle run by Run.
	LastReport() (CycleReport, bool)
}

// service is the concrete implementation of the Service interface.
type service struct {
	registry Registry
	fetcher  TransactionFetcher
	handler  TransactionHandler

	retry          retry.Retry
	clock          clock.Clock
	notifyExisting bool

	interval atomic.Int64
	running  atomic.Bool

	mu         sync.RWMutex
	lastReport *CycleReport

	tracer  trace.Tracer
	metrics metrics
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds optional settings for New.
type config struct {
	retry          retry.Retry
	clock          clock.Clock
	interval       time.Duration
	notifyExisting bool
}

// Option configures the service.
type Option func(*config)

// WithRetry sets the retry policy applied to every fetch.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithClock replaces the clock used for reports and sleeps.
func WithClock(cl clock.Clock) Option {
	return func(c *config) {
		c.clock = cl
	}
}

// WithInterval sets the initial pause between cycles. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithNotifyExisting makes the first check of an address report its whole
// history as new. By default the first check only records it.
func WithNotifyExisting() Option {
	return func(c *config) {
		c.notifyExisting = true
	}
}

// New creates a poll service.
func New(registry Registry, fetcher TransactionFetcher, handler TransactionHandler, opts ...Option) *service {
	cfg := config{
		retry:    retry.New(),
		clock:    clock.NewDefaultClock(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &service{
		registry:       registry,
		fetcher:        fetcher,
		handler:        handler,
		retry:          cfg.retry,
		clock:          cfg.clock,
		notifyExisting: cfg.notifyExisting,
		tracer:         otel.Tracer(instrumentationName),
		metrics:        newMetrics(),
	}
	s.interval.Store(int64(cfg.interval))

	return s
}

// Interval implements Service.
func (s *service) Interval() time.Duration {
	return time.Duration(s.interval.Load())
}

// SetInterval implements Service.
func (s *service) SetInterval(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidInterval
	}

	s.interval.Store(int64(d))
	return nil
}

// Running implements Service.
func (s *service) Running() bool {
	return s.running.Load()
}

// LastReport implements Service.
func (s *service) LastReport() (CycleReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastReport == nil {
		return CycleReport{}, false
	}
	return *s.lastReport, true
}

func (s *service) storeReport(report CycleReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReport = &report
}
