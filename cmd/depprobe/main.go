package main

import (
	_ "github.com/joho/godotenv/autoload"

	"hrscaffold/internal/config"
	"hrscaffold/internal/logging"
	"hrscaffold/internal/probe"
)

// depprobe checks that the configured module is compiled into the binary
// and appends the outcome to the report file. An unavailable dependency is
// recorded, not fatal; only a report-file write error fails the run.
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	p := probe.NewDependencyProbe(cfg.DepProbe, logger)
	if err := p.Run(); err != nil {
		logger.WithError(err).Fatal("failed to write dependency report")
	}
}
