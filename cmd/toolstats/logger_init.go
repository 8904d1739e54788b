package main

import (
	"os"

	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// initCLILogger installs a logger for one-shot commands. Logs go to stderr so
// stdout carries only the command's output.
func initCLILogger(cfg *config.Config) {
	loggerConfig := logger.ForEnvironment(cfg.Environment)
	loggerConfig.AddSource = false
	if cfg.LogLevel != "" {
		loggerConfig.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		loggerConfig.Format = cfg.LogFormat
	}
	if cfg.ServiceName != "" {
		loggerConfig.ServiceName = cfg.ServiceName
	}
	if cfg.Version != "" {
		loggerConfig.Version = cfg.Version
	}

	logger.InitLoggerWithWriter(loggerConfig, os.Stderr)
}
