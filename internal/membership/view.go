package membership

import (
	"iter"
	"slices"

	"github.com/mrterry/lunchr/types"
)

// View is a read-only window over one table's occupants.
//
// A View may hide a single occupant, which is how hypothetical "remove one"
// sets are produced without copying. Views share storage with the Index and
// must not be retained across mutations.
type View struct {
	members []types.PersonID // sorted ascending, shared with the index
	hidden  types.PersonID
	hiding  bool
}

var _ types.Members = View{}

// NewView builds a standalone view over persons. The input is copied and sorted.
func NewView(persons ...types.PersonID) View {
	members := slices.Clone(persons)
	slices.Sort(members)

	return View{members: slices.Compact(members)}
}

// Len returns the number of visible occupants.
func (v View) Len() int {
	if v.hiding {
		return len(v.members) - 1
	}

	return len(v.members)
}

// Contains reports whether person is a visible occupant.
func (v View) Contains(person types.PersonID) bool {
	if v.hiding && person == v.hidden {
		return false
	}
	_, found := slices.BinarySearch(v.members, person)

	return found
}

// All yields the visible occupants in ascending order.
func (v View) All() iter.Seq[types.PersonID] {
	return func(yield func(types.PersonID) bool) {
		for _, p := range v.members {
			if v.hiding && p == v.hidden {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Without returns a view that additionally hides person.
//
// Hiding a non-member returns v unchanged. Hiding a second occupant falls back
// to a materialized copy, since a View tracks at most one hidden entry.
func (v View) Without(person types.PersonID) View {
	if !v.Contains(person) {
		return v
	}
	if !v.hiding {
		return View{members: v.members, hidden: person, hiding: true}
	}

	kept := make([]types.PersonID, 0, v.Len()-1)
	for p := range v.All() {
		if p != person {
			kept = append(kept, p)
		}
	}

	return View{members: kept}
}

// Slice returns a copy of the visible occupants in ascending order.
func (v View) Slice() []types.PersonID {
	return slices.Collect(v.All())
}
