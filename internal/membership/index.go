package membership

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/mrterry/lunchr/types"
)

// Index is the bidirectional person/table mapping.
//
// Invariant: person p is in tables[t] if and only if forward[p] == t. The
// invariant can be broken transiently between Join and the matching Remove;
// CheckInvariants verifies it.
//
// Index is not safe for concurrent use.
type Index struct {
	forward map[types.PersonID]types.TableID
	tables  [][]types.PersonID
}

// New allocates tableCount empty tables identified 0..tableCount-1.
//
// Parameters:
//   - personCount: Expected number of persons (capacity hint for the forward map)
//   - tableCount: Number of tables to allocate
//
// Returns:
//   - *Index: Index with every table empty and nobody assigned
func New(personCount, tableCount int) *Index {
	return &Index{
		forward: make(map[types.PersonID]types.TableID, max(personCount, 0)),
		tables:  make([][]types.PersonID, max(tableCount, 0)),
	}
}

// Tables returns the number of allocated tables.
func (x *Index) Tables() int {
	return len(x.tables)
}

// Join seats person at table.
//
// The person is inserted into table's member set and the forward map is
// updated. The previous table's member set is NOT modified; callers that move
// a person must Remove it from the previous table themselves.
//
// Capacity is not checked here: scorers only propose feasible moves.
//
// Returns:
//   - types.TableID: Previous table of the person (valid when ok)
//   - bool: true when the person was already seated somewhere
func (x *Index) Join(person types.PersonID, table types.TableID) (types.TableID, bool) {
	x.mustExist(table)

	members := x.tables[table]
	if i, found := slices.BinarySearch(members, person); !found {
		x.tables[table] = slices.Insert(members, i, person)
	}

	prev, ok := x.forward[person]
	x.forward[person] = table

	return prev, ok
}

// Remove deletes person from table's member set.
//
// The forward entry is cleared only when it still points at table, so Remove
// serves both as the second half of a move (forward already repointed) and as
// an eviction (the person ends up unassigned).
//
// Returns:
//   - bool: true if person was a member of table
func (x *Index) Remove(person types.PersonID, table types.TableID) bool {
	x.mustExist(table)

	members := x.tables[table]
	i, found := slices.BinarySearch(members, person)
	if !found {
		return false
	}
	x.tables[table] = slices.Delete(members, i, i+1)

	if cur, ok := x.forward[person]; ok && cur == table {
		delete(x.forward, person)
	}

	return true
}

// CurrentTable returns the table currently holding person.
func (x *Index) CurrentTable(person types.PersonID) (types.TableID, bool) {
	t, ok := x.forward[person]
	return t, ok
}

// Members returns a read-only view of table's occupants.
func (x *Index) Members(table types.TableID) View {
	x.mustExist(table)
	return View{members: x.tables[table]}
}

// Assignment returns a copy of the forward map.
func (x *Index) Assignment() map[types.PersonID]types.TableID {
	out := make(map[types.PersonID]types.TableID, len(x.forward))
	for p, t := range x.forward {
		out[p] = t
	}

	return out
}

// Assigned returns the number of seated persons.
func (x *Index) Assigned() int {
	return len(x.forward)
}

// Occupancy returns the member count of every table, indexed by table id.
func (x *Index) Occupancy() []int {
	out := make([]int, len(x.tables))
	for t, members := range x.tables {
		out[t] = len(members)
	}

	return out
}

// CheckInvariants verifies that the forward map and the member sets are exact
// inverses and that no table holds more than capacity persons.
//
// Parameters:
//   - capacity: Shared table capacity (<= 0 skips the capacity check)
//
// Returns:
//   - error: Wrapped types.ErrInvariantViolation describing the first problem found
func (x *Index) CheckInvariants(capacity int) error {
	seated := 0
	for t, members := range x.tables {
		table := types.TableID(t) //nolint:gosec // table count fits in TableID by construction
		if capacity > 0 && len(members) > capacity {
			return fmt.Errorf("%w: table %d holds %d persons, capacity %d",
				types.ErrInvariantViolation, table, len(members), capacity)
		}
		for _, p := range members {
			cur, ok := x.forward[p]
			if !ok {
				return fmt.Errorf("%w: person %d is in table %d but unassigned",
					types.ErrInvariantViolation, p, table)
			}
			if cur != table {
				return fmt.Errorf("%w: person %d is in table %d but assigned to table %d",
					types.ErrInvariantViolation, p, table, cur)
			}
		}
		seated += len(members)
	}

	if seated != len(x.forward) {
		return fmt.Errorf("%w: %d persons assigned but %d seated",
			types.ErrInvariantViolation, len(x.forward), seated)
	}

	return nil
}

// Fingerprint returns an xxh3 hash of the current seating.
//
// Two indexes with the same seating produce the same fingerprint regardless of
// the order of the operations that built them.
func (x *Index) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*len(x.tables)+4*len(x.forward))
	for t, members := range x.tables {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t))            //nolint:gosec // bounded by table count
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(members))) //nolint:gosec // bounded by capacity
		for _, p := range members {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(p))
		}
	}

	return xxh3.Hash(buf)
}

func (x *Index) mustExist(table types.TableID) {
	if int(table) >= len(x.tables) {
		panic(fmt.Errorf("membership: %w: %d (allocated %d)", types.ErrUnknownTable, table, len(x.tables)))
	}
}
