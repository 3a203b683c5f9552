package notify

import (
	"context"
	"errors"
	"fmt"
)

// Multi delivers every message to all of its notifiers.
type Multi struct {
	notifiers []Notifier
}

var _ Notifier = (*Multi)(nil)

// NewMulti combines notifiers.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// Deliver implements Notifier. A failing notifier does not prevent delivery
// through the others; all failures are joined.
func (m *Multi) Deliver(ctx context.Context, title, message string) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Deliver(ctx, title, message); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", n, err))
		}
	}
	return errors.Join(errs...)
}
