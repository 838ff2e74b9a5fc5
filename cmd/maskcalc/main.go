package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Flarenzy/maskcalc/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := cli.LoadConfig()

	if err := cli.Run(ctx, cfg); err != nil {
		os.Exit(1)
	}
}
