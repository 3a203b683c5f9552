package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// commandRunner executes an external program and waits for it.
type commandRunner func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Desktop shows notifications in the notification center of the host:
// osascript on macOS and notify-send on Linux.
type Desktop struct {
	goos string
	tool string
	run  commandRunner
}

var _ Notifier = (*Desktop)(nil)

// NewDesktop returns a Desktop notifier for the running platform.
func NewDesktop() (*Desktop, error) {
	return newDesktop(runtime.GOOS, exec.LookPath, runCommand)
}

func newDesktop(goos string, lookPath func(string) (string, error), run commandRunner) (*Desktop, error) {
	var tool string
	switch goos {
	case "darwin":
		tool = "osascript"
	case "linux":
		tool = "notify-send"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}

	path, err := lookPath(tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found: %w", ErrInvalidConfiguration, tool, err)
	}

	return &Desktop{goos: goos, tool: path, run: run}, nil
}

// Deliver implements Notifier.
func (d *Desktop) Deliver(ctx context.Context, title, message string) error {
	if d.goos == "darwin" {
		script := fmt.Sprintf("display notification %s with title %s", appleScriptQuote(message), appleScriptQuote(title))
		return d.run(ctx, d.tool, "-e", script)
	}

	return d.run(ctx, d.tool, "--app-name=btcmonitor", title, message)
}

// appleScriptQuote returns s as an AppleScript string literal.
func appleScriptQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
