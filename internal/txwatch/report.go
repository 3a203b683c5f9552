package txwatch

import (
	"time"

	"github.com/google/uuid"
)

// AddressFailure records an address whose check failed during a cycle.
type AddressFailure struct {
	Address string
	Err     error
}

// CycleReport summarizes one pass over the registry.
type CycleReport struct {
	ID              string // UUIDv7, sortable by start time
	StartedAt       time.Time
	FinishedAt      time.Time
	Checked         int // addresses fetched and recorded successfully
	NewTransactions int // transactions handed to the TransactionHandler
	Failures        []AddressFailure
	Err             error // set when the cycle could not run at all
}

// newCycleReport starts a report at startedAt.
func newCycleReport(startedAt time.Time) CycleReport {
	return CycleReport{
		ID:        uuid.Must(uuid.NewV7()).String(),
		StartedAt: startedAt,
	}
}

// Duration returns how long the cycle took.
func (r CycleReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// recordFailure appends a failed address.
func (r *CycleReport) recordFailure(address string, err error) {
	r.Failures = append(r.Failures, AddressFailure{Address: address, Err: err})
}
