package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ArmaRealms/ToolStats/internal/domain"
)

// Config holds the process configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"toolstats"`
	Version     string `env:"VERSION" envDefault:"dev"`
	// LogDir additionally writes each session's log to a file in this directory
	LogDir string `env:"LOG_DIR"`

	// ToolStatsPath is the YAML file holding messages and switches
	ToolStatsPath string `env:"TOOLSTATS_CONFIG" envDefault:"config.yml" validate:"required"`
	// MetricsAddr enables the /metrics endpoint when set, e.g. ":9090"
	MetricsAddr string `env:"METRICS_ADDR" validate:"omitempty,hostname_port|startswith=:"`

	TickInterval         time.Duration `env:"TICK_INTERVAL" envDefault:"50ms" validate:"gt=0"`
	TrackedDeathCapacity int           `env:"TRACKED_DEATH_CAPACITY" envDefault:"4096" validate:"gt=0"`
	TrackedDeathTTL      time.Duration `env:"TRACKED_DEATH_TTL" envDefault:"5m" validate:"gte=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(DotEnvPath)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFailed, err)
	}

	if err := validateStruct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidEnvConfig, domain.ErrInvalidConfig, err)
	}

	return cfg, nil
}
