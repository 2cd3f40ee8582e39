package types

import "iter"

// Members is a read-only view over a table's occupants.
//
// A view may be hypothetical: the scoring package hands out views that hide one
// occupant to evaluate eviction without copying the underlying set.
type Members interface {
	// Len returns the number of visible occupants.
	Len() int

	// Contains reports whether person is a visible occupant.
	Contains(person PersonID) bool

	// All yields the visible occupants in ascending order.
	All() iter.Seq[PersonID]
}

// Scorer computes the cost of admitting a person to a group.
//
// Implementations must be pure: they never mutate members and return the same
// result for the same input. The decision procedure assumes nothing about the
// cost beyond "lower is better" and "false means reject".
type Scorer interface {
	// Score returns the cost of the group that would result from admitting person
	// to members.
	//
	// Parameters:
	//   - person: Candidate person
	//   - members: Current (or hypothetical) occupants of the group
	//
	// Returns:
	//   - Cost: Admission cost, lower is better
	//   - bool: false when admission is infeasible (e.g., over capacity)
	Score(person PersonID, members Members) (Cost, bool)
}
