package main

import (
	"fmt"
	"log/slog"

	"github.com/excusedraft/excuse-api/internal/config"
	"github.com/excusedraft/excuse-api/internal/generation"
	"github.com/excusedraft/excuse-api/internal/platform/databricks"
)

// application holds the shared dependencies for the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication wires the application dependencies together.
// The model-serving client receives its configuration as an explicit
// struct; nothing below this point reads environment state directly.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, err := databricks.NewClient(logger, databricks.ConfigFromLLM(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("failed to create model serving client: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    logger,
		generator: client,
	}, nil
}
