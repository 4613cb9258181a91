package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/clevertec/cashier-check/internal/app"
)

func main() {
	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := app.LoadConfig()
	if err != nil {
		lg.Error("load config", zap.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx, lg, cfg, os.Args[1:]); err != nil {
		lg.Error("check failed", zap.Error(err))
		os.Exit(1)
	}
}
