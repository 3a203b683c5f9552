package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console prints notifications to a writer.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Notifier = (*Console)(nil)

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Deliver implements Notifier.
func (c *Console) Deliver(_ context.Context, title, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.w, "\n=== %s ===\n%s\n\n", title, message)
	return err
}
