package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/cli"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
