package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Version is set via ldflags during build.
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		os.Exit(exitCode(err))
	}
}
