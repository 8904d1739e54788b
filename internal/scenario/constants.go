package scenario

import "github.com/ArmaRealms/ToolStats/internal/domain"

// Causes used when a hit step does not name one
const (
	DefaultMeleeCause   = domain.CauseEntityAttack
	DefaultRangedCause  = domain.CauseProjectile
	DefaultGenericCause = domain.CauseFall
	DefaultBlockCause   = domain.CauseContact
)

// floatTolerance bounds the difference accepted when comparing accumulators
const floatTolerance = 1e-9

// Log messages
const (
	LogMsgScenarioStarted   = "Scenario started"
	LogMsgScenarioCompleted = "Scenario completed"
	LogMsgStepFailed        = "Scenario step failed"
	LogMsgAssertionFailed   = "Scenario assertion failed"
)

// Error messages
const (
	ErrMsgReadScenarioFailed = "failed to read scenario %s: %w"
	ErrMsgDecodeFailed       = "%w: %w"
	ErrMsgNoMetaWithData     = "an item without metadata cannot carry lore or stats"
	ErrMsgSlotOutOfRange     = "slot %d is out of range"
	ErrMsgUnknownGameMode    = "unknown game mode %q"
	ErrMsgUnknownShape       = "unknown shape %q"
	ErrMsgAttackerRequired   = "by_entity hits need an attacker"
	ErrMsgAttackerNotAllowed = "%s hits have no attacker"
	ErrMsgAttackerEmpty      = "attacker names no player, thrown weapon or shooter"
	ErrMsgUnknownArmorSlot   = "unknown armor slot %q"
	ErrMsgUnknownStat        = "unknown statistic %q"
	ErrMsgAssertionNoTarget  = "assertion addresses no item"
	ErrMsgExpectedValue      = "expected %v, got %v"
	ErrMsgExpectedLore       = "expected lore %q, got %q"
)
