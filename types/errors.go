package types

import "errors"

// Sentinel errors for the lunchr library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).

// Engine errors - Public API errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownPerson is returned when a person id is outside the configured range.
	ErrUnknownPerson = errors.New("unknown person")

	// ErrUnknownScorer is returned when a scorer name cannot be resolved.
	ErrUnknownScorer = errors.New("unknown scorer")

	// ErrInvalidAction is returned when Commit receives an action that cannot be
	// applied (e.g., Replace naming a person who is not seated at the table).
	ErrInvalidAction = errors.New("invalid action")
)

// Membership errors - Internal bookkeeping errors.
var (
	// ErrUnknownTable marks a table id outside the allocated range. The membership
	// index panics with it: an unknown table is caller misuse, not a runtime condition.
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvariantViolation is returned when the forward map and the member sets
	// disagree, or a table exceeds its capacity.
	ErrInvariantViolation = errors.New("membership invariant violated")
)
