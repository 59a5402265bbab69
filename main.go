package main

import (
	"log/slog"
	"os"

	"github.com/arnavag/life-tracker/internal/config"
	"github.com/arnavag/life-tracker/internal/server"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	store := storage.NewStore(cfg.DataDir)

	srv := server.New(store, cfg)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
