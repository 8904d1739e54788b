package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/ArmaRealms/ToolStats/internal/config"
	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// SetupLogger initializes the application logger. Output goes to stdout and,
// when cfg.LogDir is set, to a timestamped session file in that directory
// whose handle the caller must close. Without an explicit LOG_FORMAT, a
// terminal gets text and anything else gets JSON.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogDirFailed, err)
		}

		pruneSessionLogs(cfg.LogDir, LogFilesKept)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFileFailed, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, logFile)
	}

	format := cfg.LogFormat
	if format == "" {
		format = detectFormat(os.Stdout.Fd())
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		format,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", format)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"toolstats_config", cfg.ToolStatsPath,
		"metrics_addr", cfg.MetricsAddr,
		"tick_interval", cfg.TickInterval,
		"tracked_death_capacity", cfg.TrackedDeathCapacity,
		"tracked_death_ttl", cfg.TrackedDeathTTL)

	return logFile, nil
}

func detectFormat(fd uintptr) string {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return LogFormatTerminal
	}
	return LogFormatPipe
}

// pruneSessionLogs deletes the oldest session logs in dir until at most keep
// remain. Other files are left alone.
func pruneSessionLogs(dir string, keep int) {
	// Glob sorts lexically, which is chronological for these names
	logs, err := filepath.Glob(filepath.Join(dir, LogFileGlob))
	if err != nil || len(logs) <= keep {
		return
	}
	for _, path := range logs[:len(logs)-keep] {
		if err := os.Remove(path); err != nil {
			slog.Warn(LogMsgDeleteOldLogFailed, "file", filepath.Base(path), "error", err)
		}
	}
}
