package scoring

import "github.com/mrterry/lunchr/types"

// Size scores an admission by the size of the resulting group.
type Size struct {
	capacity int
}

var _ types.Scorer = (*Size)(nil)

// NewSize creates a size scorer for tables holding at most capacity persons.
//
// Example:
//
//	scorer := scoring.NewSize(2)
//	cost, ok := scorer.Score(person, members)
func NewSize(capacity int) *Size {
	return &Size{capacity: capacity}
}

// Capacity returns the table capacity the scorer enforces.
func (s *Size) Capacity() int {
	return s.capacity
}

// Score returns the group size after admitting person, or false when that size
// exceeds the capacity. A person already in members does not grow the group.
func (s *Size) Score(person types.PersonID, members types.Members) (types.Cost, bool) {
	size, ok := admittedSize(person, members, s.capacity)
	if !ok {
		return 0, false
	}

	return types.Cost(size), true
}

// admittedSize is the hypothetical group size after admitting person.
func admittedSize(person types.PersonID, members types.Members, capacity int) (int, bool) {
	size := members.Len()
	if !members.Contains(person) {
		size++
	}
	if size > capacity {
		return size, false
	}

	return size, true
}
