// Package main implements the entry point for the excuse-api server,
// which generates excuse email drafts through a hosted model-serving
// endpoint and serves the accompanying front-end page.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/excusedraft/excuse-api/internal/config"
	"github.com/excusedraft/excuse-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, sets up logging, wires dependencies and
// starts the HTTP server. Separated from main so failures propagate as
// errors instead of os.Exit calls scattered through the setup path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"endpoint_url", cfg.LLM.EndpointURL,
		"api_token_present", cfg.LLM.APIToken != "")

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
