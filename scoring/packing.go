package scoring

import "github.com/mrterry/lunchr/types"

// Packing scores an admission by the seats left free afterwards.
//
// Fuller tables cost less, so repeated decisions consolidate persons onto as
// few tables as possible, the way a bin-packing ranker prefers the most
// loaded host that still fits.
type Packing struct {
	capacity int
}

var _ types.Scorer = (*Packing)(nil)

// NewPacking creates a packing scorer for tables holding at most capacity persons.
func NewPacking(capacity int) *Packing {
	return &Packing{capacity: capacity}
}

// Capacity returns the table capacity the scorer enforces.
func (p *Packing) Capacity() int {
	return p.capacity
}

// Score returns capacity minus the group size after admitting person, or false
// when the group would exceed the capacity.
func (p *Packing) Score(person types.PersonID, members types.Members) (types.Cost, bool) {
	size, ok := admittedSize(person, members, p.capacity)
	if !ok {
		return 0, false
	}

	return types.Cost(p.capacity - size), true
}
