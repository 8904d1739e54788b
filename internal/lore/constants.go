package lore

const (
	LogMsgMissingTemplate = "There is no lore message configured for this statistic!"
	LogMsgLoreDisabled    = "Lore disabled for statistic, counter kept without description"

	ErrMsgMissingTemplate = "%w: %s"
)
