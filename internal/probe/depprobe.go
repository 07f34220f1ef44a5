package probe

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"hrscaffold/internal/config"
)

// DependencyProbe verifies that a module is compiled into the running
// binary and records the outcome in an append-only report file. It is the
// build-time analogue of an import check: a dependency is "available" when
// it appears in the binary's build info.
type DependencyProbe struct {
	cfg    config.DepProbeConfig
	logger *logrus.Logger

	// readBuildInfo is swappable for tests
	readBuildInfo func() (*debug.BuildInfo, bool)
}

// NewDependencyProbe builds a probe for the configured module path.
func NewDependencyProbe(cfg config.DepProbeConfig, logger *logrus.Logger) *DependencyProbe {
	return &DependencyProbe{
		cfg:           cfg,
		logger:        logger,
		readBuildInfo: debug.ReadBuildInfo,
	}
}

// Run performs the check and appends exactly one line to the report file:
// a success line with the module's version, or a failure line with the
// error text. The check itself is non-fatal; Run returns an error only
// when the report file cannot be written.
func (p *DependencyProbe) Run() error {
	version, err := p.moduleVersion()

	var line string
	if err != nil {
		line = fmt.Sprintf("%s dependency check FAILED: %v", timestamp(), err)
		p.logger.WithError(err).WithField("module", p.cfg.ModulePath).Warn("dependency unavailable")
	} else {
		line = fmt.Sprintf("%s dependency %s available, version %s", timestamp(), p.cfg.ModulePath, version)
		p.logger.WithFields(logrus.Fields{
			"module":  p.cfg.ModulePath,
			"version": version,
		}).Info("dependency available")
	}

	return appendLine(p.cfg.ReportFile, line)
}

// moduleVersion resolves the configured module's version from build info.
func (p *DependencyProbe) moduleVersion() (string, error) {
	info, ok := p.readBuildInfo()
	if !ok {
		return "", fmt.Errorf("build info is not available")
	}

	if info.Main.Path == p.cfg.ModulePath {
		return info.Main.Version, nil
	}

	for _, dep := range info.Deps {
		if dep.Path != p.cfg.ModulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version, nil
		}
		return dep.Version, nil
	}

	return "", fmt.Errorf("module %s not found in build info", p.cfg.ModulePath)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// appendLine appends one human-readable line to path, creating the file
// if needed. The file is write-only for this program; nothing reads it back.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}
