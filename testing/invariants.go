package lunchrtest

import (
	"testing"

	"github.com/mrterry/lunchr/types"
)

// Seating is the read side of a seating, as exposed by *lunchr.Engine.
type Seating interface {
	Assignment() map[types.PersonID]types.TableID
	Members(table types.TableID) []types.PersonID
	Occupancy() []int
}

// AssertAssignmentConsistent verifies that every seated person appears in
// exactly one table's member list and that the list matches the forward map.
//
// Parameters:
//   - tb: testing handle
//   - s: seating under test
func AssertAssignmentConsistent(tb testing.TB, s Seating) {
	tb.Helper()

	assignment := s.Assignment()
	occupancy := s.Occupancy()

	seen := make(map[types.PersonID]types.TableID, len(assignment))
	total := 0
	for i, count := range occupancy {
		table := types.TableID(i) //nolint:gosec // bounded by table count
		members := s.Members(table)
		if len(members) != count {
			tb.Fatalf("table %d: occupancy %d but %d members listed", table, count, len(members))
		}
		total += len(members)

		for _, p := range members {
			if other, dup := seen[p]; dup {
				tb.Fatalf("person %d seated at tables %d and %d", p, other, table)
			}
			seen[p] = table

			got, ok := assignment[p]
			if !ok {
				tb.Fatalf("person %d listed at table %d but unassigned in the forward map", p, table)
			}
			if got != table {
				tb.Fatalf("person %d listed at table %d but the forward map says %d", p, table, got)
			}
		}
	}

	if total != len(assignment) {
		tb.Fatalf("member lists hold %d persons but %d are assigned", total, len(assignment))
	}
}

// AssertCapacity verifies that no table holds more than capacity persons.
//
// Parameters:
//   - tb: testing handle
//   - s: seating under test
//   - capacity: maximum persons per table
func AssertCapacity(tb testing.TB, s Seating, capacity int) {
	tb.Helper()

	for i, count := range s.Occupancy() {
		if count > capacity {
			tb.Fatalf("table %d holds %d persons, capacity is %d", i, count, capacity)
		}
	}
}
