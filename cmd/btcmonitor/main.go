package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/btcmonitor/internal/app"
	"github.com/gabapcia/btcmonitor/internal/handlers/cli"

	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, os.Args, app.Build)
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "btcmonitor:", err)

	var exitErr urfavecli.ExitCoder
	if errors.As(err, &exitErr) {
		stop()
		os.Exit(exitErr.ExitCode())
	}

	stop()
	os.Exit(1)
}
