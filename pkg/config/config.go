package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// HostConfig is the environment configuration for the development host.
// Flags parsed in cmd/gamehost override individual fields.
type HostConfig struct {
	Port             int           `env:"GAMECORE_PORT" envDefault:"8080"`
	LogLevel         string        `env:"GAMECORE_LOG_LEVEL" envDefault:"info"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	SQLitePath       string        `env:"GAMECORE_SQLITE_PATH"`
	SnapshotInterval time.Duration `env:"GAMECORE_SNAPSHOT_INTERVAL" envDefault:"10s"`
	JournalInterval  time.Duration `env:"GAMECORE_JOURNAL_INTERVAL" envDefault:"1s"`
	BuiltinRules     bool          `env:"GAMECORE_BUILTIN_RULES" envDefault:"false"`
	TLSCertFile      string        `env:"GAMECORE_TLS_CERT_FILE"`
	TLSKeyFile       string        `env:"GAMECORE_TLS_KEY_FILE"`
}

// LoadHostConfig parses the host configuration from the environment.
func LoadHostConfig() (*HostConfig, error) {
	cfg := &HostConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %v", err)
	}
	return cfg, nil
}
