package probe

import (
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrscaffold/internal/config"
	"hrscaffold/internal/logging"
)

func fakeBuildInfo(deps ...*debug.Module) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "hrscaffold", Version: "(devel)"},
			Deps: deps,
		}, true
	}
}

func newDepProbe(t *testing.T, modulePath string) (*DependencyProbe, string) {
	t.Helper()
	report := filepath.Join(t.TempDir(), "dependency_check.log")
	p := NewDependencyProbe(config.DepProbeConfig{
		ModulePath: modulePath,
		ReportFile: report,
	}, logging.NewWithOutput("info", io.Discard))
	return p, report
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestDependencyProbeSuccess(t *testing.T) {
	p, report := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.readBuildInfo = fakeBuildInfo(
		&debug.Module{Path: "github.com/gofiber/fiber/v2", Version: "v2.52.9"},
	)

	require.NoError(t, p.Run())

	lines := readLines(t, report)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "github.com/gofiber/fiber/v2 available")
	assert.Contains(t, lines[0], "v2.52.9")
	assert.NotContains(t, lines[0], "FAILED")
}

func TestDependencyProbeReplacedModule(t *testing.T) {
	p, report := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.readBuildInfo = fakeBuildInfo(
		&debug.Module{
			Path:    "github.com/gofiber/fiber/v2",
			Version: "v2.52.0",
			Replace: &debug.Module{Path: "github.com/fork/fiber/v2", Version: "v2.52.9-fork"},
		},
	)

	require.NoError(t, p.Run())

	lines := readLines(t, report)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "v2.52.9-fork")
}

func TestDependencyProbeModuleMissing(t *testing.T) {
	p, report := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.readBuildInfo = fakeBuildInfo()

	require.NoError(t, p.Run())

	lines := readLines(t, report)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "FAILED")
	assert.Contains(t, lines[0], "not found in build info")
}

func TestDependencyProbeNoBuildInfo(t *testing.T) {
	p, report := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	require.NoError(t, p.Run())

	lines := readLines(t, report)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "FAILED")
	assert.Contains(t, lines[0], "build info is not available")
}

func TestDependencyProbeAppends(t *testing.T) {
	p, report := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.readBuildInfo = fakeBuildInfo(
		&debug.Module{Path: "github.com/gofiber/fiber/v2", Version: "v2.52.9"},
	)

	require.NoError(t, p.Run())
	require.NoError(t, p.Run())

	lines := readLines(t, report)
	assert.Len(t, lines, 2)
}

func TestDependencyProbeUnwritableReport(t *testing.T) {
	p, _ := newDepProbe(t, "github.com/gofiber/fiber/v2")
	p.cfg.ReportFile = filepath.Join(t.TempDir(), "missing-dir", "report.log")
	p.readBuildInfo = fakeBuildInfo()

	assert.Error(t, p.Run())
}

func TestDependencyProbeRealBuildInfo(t *testing.T) {
	// The test binary carries testify; the default lookup must find it.
	p, report := newDepProbe(t, "github.com/stretchr/testify")

	require.NoError(t, p.Run())

	lines := readLines(t, report)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "github.com/stretchr/testify available")
}
