package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgMissingMetadata = "item has no metadata"
	ErrMsgCorruptCounter  = "stored counter is not decodable"
	ErrMsgMissingTemplate = "no lore template configured"
	ErrMsgStaleTarget     = "mutation target no longer resolves"
	ErrMsgUnknownStat     = "unknown statistic"
	ErrMsgInvalidConfig   = "invalid configuration"
)

// Tracker errors. They never leave the tracker: the dispatcher and scheduled
// actions log them and move on.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMissingMetadata: the item cannot carry persisted counters
	ErrMissingMetadata = errors.New(ErrMsgMissingMetadata)

	// ErrCorruptCounter: a value is stored under the key but has the wrong type
	ErrCorruptCounter = errors.New(ErrMsgCorruptCounter)

	// ErrMissingTemplate: configuration lacks a description template for the statistic
	ErrMissingTemplate = errors.New(ErrMsgMissingTemplate)

	// ErrStaleTarget: the holder of a deferred mutation is gone or holds something else
	ErrStaleTarget = errors.New(ErrMsgStaleTarget)

	ErrUnknownStat   = errors.New(ErrMsgUnknownStat)
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
