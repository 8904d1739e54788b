package attribution

// Log messages
const (
	LogMsgKillAttributed         = "Kill attributed"
	LogMsgDeathAlreadyAttributed = "Death already attributed, skipping kill"
	LogMsgIgnoredCause           = "Damage cause excluded from attribution"
	LogMsgNonInteractive         = "Player in non-interactive game mode, skipping"
)
