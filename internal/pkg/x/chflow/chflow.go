// Package chflow provides context-aware helpers for channel operations, so a
// blocking wait (a timer tick, an OS signal) always gives up once the
// surrounding context is cancelled.
package chflow

import "context"

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}
