package main

import (
	"fmt"
	"log/slog"
	"os"

	"contract-flow/internal/config"
	"contract-flow/internal/database"
	"contract-flow/internal/server"
	"contract-flow/internal/workflow"
	"contract-flow/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	database.Init(cfg)

	engine := workflow.NewEngine(database.NewStore(database.DB), slog.Default())
	r := server.NewRouter(cfg, engine)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
