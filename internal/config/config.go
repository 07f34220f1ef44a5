package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds settings for the example web application.
type ServerConfig struct {
	Host string
	Port string
}

// DepProbeConfig holds settings for the dependency-availability probe.
type DepProbeConfig struct {
	ModulePath string
	ReportFile string
}

// HealthProbeConfig holds settings for the one-shot health smoke test.
type HealthProbeConfig struct {
	URL          string
	StartupDelay time.Duration
	Timeout      time.Duration
}

// AppConfig is the centralized configuration struct for the scaffold.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server         ServerConfig
	DepProbe       DepProbeConfig
	HealthProbe    HealthProbeConfig
	SupervisorFile string
	LogLevel       string
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host: getEnv("APP_HOST", "127.0.0.1"),
			Port: getEnv("PORT", "8080"),
		},
		DepProbe: DepProbeConfig{
			ModulePath: getEnv("DEP_PROBE_MODULE", "github.com/gofiber/fiber/v2"),
			ReportFile: getEnv("DEP_PROBE_REPORT", "dependency_check.log"),
		},
		HealthProbe: HealthProbeConfig{
			URL:          getEnv("HEALTH_PROBE_URL", "http://127.0.0.1:8080/health"),
			StartupDelay: getEnvDuration("HEALTH_PROBE_DELAY", 5*time.Second),
			Timeout:      getEnvDuration("HEALTH_PROBE_TIMEOUT", 5*time.Second),
		},
		SupervisorFile: getEnv("SUPERVISOR_CONFIG", "supervisor.yaml"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
