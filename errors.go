package lunchr

import "github.com/mrterry/lunchr/types"

// Sentinel errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownPerson is returned when a person id is outside 0..PersonCount-1.
	ErrUnknownPerson = types.ErrUnknownPerson

	// ErrUnknownScorer is returned when Config.Scorer names no built-in scorer.
	ErrUnknownScorer = types.ErrUnknownScorer

	// ErrInvalidAction is returned when Commit receives an action it cannot apply.
	ErrInvalidAction = types.ErrInvalidAction

	// ErrUnknownTable marks a table id outside 0..TableCount-1. Engine methods
	// panic with it, since it indicates caller misuse.
	ErrUnknownTable = types.ErrUnknownTable

	// ErrInvariantViolation is returned when the membership bookkeeping is inconsistent.
	ErrInvariantViolation = types.ErrInvariantViolation
)
