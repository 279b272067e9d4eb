package main

import (
	"log"
	"log/slog"
	"os"

	"hugamara-ceo-portal/config"
	"hugamara-ceo-portal/pkg/ingestion"
	"hugamara-ceo-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}
	logger.Initialize(cfg.Environment)

	store := ingestion.New(ingestion.Options{
		ProcessingDelay: cfg.ProcessingDelay,
		Logger:          logger.Get(),
	})

	srv, err := newServer(cfg, store)
	if err != nil {
		slog.Error("failed to build server", "err", err)
		os.Exit(1)
	}

	r := srv.router()
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	slog.Info("Hugamara CEO Portal API listening", "addr", addr, "env", cfg.Environment)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
