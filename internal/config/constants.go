package config

// Configuration file paths
const (
	DefaultToolStatsPath = "config.yml"
	DotEnvPath           = ".env"
)

// Message paths in config.yml, relative to "messages."
const (
	MessagePlayerKills = "kills.player"
	MessageMobKills    = "kills.mob"
	MessageDamageTaken = "damage-taken"
)

// Shipped message templates
const (
	DefaultPlayerKillsMessage = "&7Player kills: &8{kills}"
	DefaultMobKillsMessage    = "&7Mob kills: &8{kills}"
	DefaultDamageTakenMessage = "&7Damage taken: &8{damage}"
	DefaultLocale             = "en-US"
)

// Color code translation
const (
	AltColorChar = '&'
	ColorChar    = '§'
	ColorCodeSet = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"
)

// Error messages
const (
	ErrMsgParseEnvFailed       = "parse env: %w"
	ErrMsgInvalidEnvConfig     = "%w: environment: %s"
	ErrMsgReadToolStatsFailed  = "failed to read config file %s: %w"
	ErrMsgParseToolStatsFailed = "failed to parse config file %s: %w"
	ErrMsgInvalidToolStats     = "%w: %s: %s"
	ErrMsgTemplateWithoutText  = "messages.%s has no text besides its placeholder"
)

// Log messages
const (
	LogMsgToolStatsMissing = "Config file not found, using shipped defaults"
	LogMsgToolStatsLoaded  = "Config file loaded"
)
