package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"hrscaffold/internal/config"
	"hrscaffold/internal/hr"
)

// maxBodyLog caps how much of the health response body is echoed into logs.
const maxBodyLog = 512

// HealthProbe is a one-shot smoke test against the service's health
// endpoint: wait for the server to come up, issue a single GET, classify
// the outcome. A failure ends the run; there is no retry.
type HealthProbe struct {
	cfg    config.HealthProbeConfig
	logger *logrus.Logger
	client *http.Client
}

// NewHealthProbe builds a probe with an instrumented HTTP client bounded
// by the configured timeout.
func NewHealthProbe(cfg config.HealthProbeConfig, logger *logrus.Logger) *HealthProbe {
	return &HealthProbe{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Run sleeps for the startup delay, performs the single request and
// returns nil only when the endpoint answered exactly 200. Transport
// failures and non-200 statuses are logged and returned as errors; Run
// never panics.
func (p *HealthProbe) Run(ctx context.Context) error {
	if p.cfg.StartupDelay > 0 {
		p.logger.WithField("delay", p.cfg.StartupDelay.String()).Info("waiting for server startup")

		timer := time.NewTimer(p.cfg.StartupDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		p.logger.WithError(err).Error("health check ERROR: invalid request")
		return fmt.Errorf("health check error: %w", err)
	}
	req.Header.Set("User-Agent", "hrscaffold-healthcheck/"+hr.Version)

	resp, err := p.client.Do(req)
	if err != nil {
		// Connection refused, timeout, DNS failure and friends land here.
		p.logger.WithError(err).WithField("url", p.cfg.URL).Error("health check ERROR")
		return fmt.Errorf("health check error: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyLog))

	// Exactly 200 counts as healthy.
	if resp.StatusCode != http.StatusOK {
		p.logger.WithFields(logrus.Fields{
			"url":    p.cfg.URL,
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("health check FAILED")
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}

	p.logger.WithFields(logrus.Fields{
		"url":    p.cfg.URL,
		"status": resp.StatusCode,
		"body":   string(body),
	}).Info("health check SUCCESS")
	return nil
}
