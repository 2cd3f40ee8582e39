package types

import "fmt"

// ActionKind enumerates the moves a decision can produce.
type ActionKind int

const (
	// ActionStay leaves the person where they are.
	ActionStay ActionKind = iota

	// ActionJoin moves the person into a table with a free seat.
	ActionJoin

	// ActionReplace evicts one occupant of a full table and seats the person in
	// the freed seat. The evicted occupant is left unassigned.
	ActionReplace
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionStay:
		return "Stay"
	case ActionJoin:
		return "Join"
	case ActionReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Action is a single proposed or committed move.
//
// Table is meaningful for Join and Replace; Evicted only for Replace.
type Action struct {
	Kind    ActionKind
	Table   TableID
	Evicted PersonID
}

// Stay returns the no-op action.
func Stay() Action {
	return Action{Kind: ActionStay}
}

// Join returns an action seating the person at table.
func Join(table TableID) Action {
	return Action{Kind: ActionJoin, Table: table}
}

// Replace returns an action evicting evicted from table and seating the person there.
func Replace(evicted PersonID, table TableID) Action {
	return Action{Kind: ActionReplace, Table: table, Evicted: evicted}
}

// IsStay reports whether the action leaves the membership untouched.
func (a Action) IsStay() bool {
	return a.Kind == ActionStay
}

// String renders the action as Stay, Join(t) or Replace(p, t).
func (a Action) String() string {
	switch a.Kind {
	case ActionStay:
		return "Stay"
	case ActionJoin:
		return fmt.Sprintf("Join(%d)", a.Table)
	case ActionReplace:
		return fmt.Sprintf("Replace(%d, %d)", a.Evicted, a.Table)
	default:
		return "Unknown"
	}
}

// Outcome records what happened when one person was evaluated.
//
// Outcomes are the per-round output handed back to drivers, which may render,
// log or persist them.
type Outcome struct {
	// Person is the person that was evaluated.
	Person PersonID

	// From is the table the person held before the decision (valid when HadTable).
	From     TableID
	HadTable bool

	// Action is the committed action; Stay when Improved is false.
	Action Action

	// Improved reports whether the chosen action strictly beat the current seat.
	Improved bool

	// Cost is the cost of the chosen action (WorstCost when nothing was feasible).
	Cost Cost
}
