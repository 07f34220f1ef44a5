package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"hrscaffold/internal/config"
	"hrscaffold/internal/logging"
	"hrscaffold/internal/probe"
)

// healthcheck is the post-deploy smoke test: wait for the server to start,
// hit the health endpoint once, exit 0 only on HTTP 200. One shot, no
// retries; CI and the supervisor gate on the exit code.
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := probe.NewHealthProbe(cfg.HealthProbe, logger)
	if err := p.Run(ctx); err != nil {
		os.Exit(1)
	}
}
