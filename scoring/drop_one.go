package scoring

import (
	"iter"

	"github.com/mrterry/lunchr/types"
)

// DropOne yields, for each occupant of members, the evicted occupant paired
// with the group that remains without it.
//
// The sequence is lazy, finite (one element per occupant, in the order of
// members.All) and restartable. Remaining groups are views over members; they
// are only valid while members is.
//
// Example:
//
//	for evicted, remaining := range scoring.DropOne(members) {
//	    if cost, ok := scorer.Score(person, remaining); ok {
//	        // evaluate Replace(evicted, table)
//	    }
//	}
func DropOne(members types.Members) iter.Seq2[types.PersonID, types.Members] {
	return func(yield func(types.PersonID, types.Members) bool) {
		for p := range members.All() {
			if !yield(p, dropped{base: members, evicted: p}) {
				return
			}
		}
	}
}

// dropped is members with one occupant hidden.
type dropped struct {
	base    types.Members
	evicted types.PersonID
}

func (d dropped) Len() int {
	return d.base.Len() - 1
}

func (d dropped) Contains(person types.PersonID) bool {
	return person != d.evicted && d.base.Contains(person)
}

func (d dropped) All() iter.Seq[types.PersonID] {
	return func(yield func(types.PersonID) bool) {
		for p := range d.base.All() {
			if p == d.evicted {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
