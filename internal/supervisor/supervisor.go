// Package supervisor loads the process-manager declaration file.
//
// The values are passed through verbatim to an external process supervisor;
// this package only parses and validates them. It does not implement worker
// management itself.
package supervisor

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config mirrors the key/value declarations consumed by the supervisor.
type Config struct {
	Bind              string `mapstructure:"bind"`
	Workers           int    `mapstructure:"workers"`
	WorkerClass       string `mapstructure:"worker_class"`
	WorkerConnections int    `mapstructure:"worker_connections"`
	Timeout           int    `mapstructure:"timeout"`
	Keepalive         int    `mapstructure:"keepalive"`
	MaxRequests       int    `mapstructure:"max_requests"`
	MaxRequestsJitter int    `mapstructure:"max_requests_jitter"`
	LogLevel          string `mapstructure:"loglevel"`
	AccessLog         string `mapstructure:"accesslog"`
	ErrorLog          string `mapstructure:"errorlog"`
	ProcName          string `mapstructure:"proc_name"`
	Preload           bool   `mapstructure:"preload"`
	PIDFile           string `mapstructure:"pidfile"`
	User              string `mapstructure:"user"`
	Group             string `mapstructure:"group"`
}

// Load reads and validates the supervisor declaration at path.
// Environment variables prefixed with SUPERVISOR_ override file values
// (e.g. SUPERVISOR_WORKERS=8).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SUPERVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read supervisor config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal supervisor config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bind", "127.0.0.1:8080")
	v.SetDefault("workers", 4)
	v.SetDefault("worker_class", "sync")
	v.SetDefault("worker_connections", 1000)
	v.SetDefault("timeout", 30)
	v.SetDefault("keepalive", 5)
	v.SetDefault("loglevel", "info")
}

// Validate checks the declaration for values the supervisor would reject.
func (c *Config) Validate() error {
	host, port, err := net.SplitHostPort(c.Bind)
	if err != nil || host == "" || port == "" {
		return fmt.Errorf("bind %q is not a valid host:port", c.Bind)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}
	if c.Keepalive < 0 {
		return fmt.Errorf("keepalive must not be negative, got %d", c.Keepalive)
	}
	if c.MaxRequestsJitter < 0 {
		return fmt.Errorf("max_requests_jitter must not be negative, got %d", c.MaxRequestsJitter)
	}
	if c.MaxRequests > 0 && c.MaxRequestsJitter > c.MaxRequests {
		return fmt.Errorf("max_requests_jitter %d exceeds max_requests %d", c.MaxRequestsJitter, c.MaxRequests)
	}
	return nil
}
