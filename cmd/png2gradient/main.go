package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/gradient-tools/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
