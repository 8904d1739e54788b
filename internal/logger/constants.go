package logger

import "log/slog"

// Output formats accepted by Config.Format.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Environment names that change logger defaults.
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

const (
	DefaultServiceName = "toolstats"
	DefaultVersion     = "dev"
)

// Keys attached to every record, or to records carrying a dispatch.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyDispatchID  = "dispatch_id"
)

// levelNames maps lower-cased level names to slog levels. Unknown names
// resolve to info.
var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}
