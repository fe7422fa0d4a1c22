// Command contentopsd runs the contentops HTTP API.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"contentops/internal/config"
	"contentops/internal/logging"
	"contentops/internal/server"
	"contentops/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer st.Close()

	srv, err := server.New(cfg, st, logger)
	if err != nil {
		log.Fatalf("create server: %v", err)
	}

	logger.Info("contentopsd starting", logging.String("bind", cfg.Server.Bind))
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", logging.Error(err))
		return
	}
	logger.Info("contentopsd stopped")
}
