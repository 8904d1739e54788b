package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler installed by InitLoggerWithWriter.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from values already resolved by the app config.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ForEnvironment returns the defaults used when nothing else is configured.
// Production logs info as JSON; everything else logs debug as text with
// source locations.
func ForEnvironment(env string) Config {
	cfg := Config{
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: env,
	}
	if env == EnvironmentProd {
		cfg.Level = "info"
		cfg.Format = LogFormatJSON
		return cfg
	}
	cfg.Level = "debug"
	cfg.Format = LogFormatText
	cfg.AddSource = true
	return cfg
}

// LogLevel resolves Level case-insensitively.
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(c.Level))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record. Empty values are omitted.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
