package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonStoeckl/library-lending-go/cli"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand(os.Stdin, os.Stdout, version).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
