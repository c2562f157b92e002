/*
Package main is the seeder entry point.

It loads the same configuration as the API server, opens the configured user
store and registers SEED_COUNT fake users whose password is "123456".
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soaresgus/community-backend/internal/app/bootstrap"
	"github.com/soaresgus/community-backend/internal/app/seed"
	"github.com/soaresgus/community-backend/internal/configs"
	"github.com/soaresgus/community-backend/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open user store")
	}
	defer closeStore()

	created, err := seed.Run(ctx, bootstrap.NewService(store, cfg), cfg.SeedCount)
	if err != nil {
		logx.Error(err, "Seeding stopped early", "created", created)
		return
	}

	logx.Info(fmt.Sprintf("%d mock users created successfully.", created))
}
