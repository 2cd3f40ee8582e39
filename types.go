package lunchr

import (
	"github.com/mrterry/lunchr/internal/decision"
	"github.com/mrterry/lunchr/types"
)

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package; the
// aliases give users lunchr.PersonID, lunchr.Action and friends directly.
type (
	PersonID   = types.PersonID
	TableID    = types.TableID
	Cost       = types.Cost
	Action     = types.Action
	ActionKind = types.ActionKind
	Outcome    = types.Outcome
	Members    = types.Members

	// Decision is the read-only result of Engine.Decide.
	Decision = decision.Result
)

// Re-export interfaces from the types package for convenience.
type (
	Scorer           = types.Scorer
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export action kinds and constants.
const (
	ActionStay    = types.ActionStay
	ActionJoin    = types.ActionJoin
	ActionReplace = types.ActionReplace

	WorstCost = types.WorstCost
)

// Action constructors.
var (
	Stay    = types.Stay
	Join    = types.Join
	Replace = types.Replace
)
