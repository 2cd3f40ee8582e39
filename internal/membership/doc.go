// Package membership provides the authoritative person/table bookkeeping.
//
// The Index owns both directions of the seating relation: the forward map
// (person → table) and the per-table member sets (table → persons). No other
// component mutates them. Readers get Views, which are cheap, read-only and
// valid until the next mutation of the index.
//
// Join and Remove are the only mutation points. Join deliberately leaves the
// previous table's set alone; callers pair it with Remove so that a move
// (or an eviction) is an explicit two-step operation:
//
//	prev, ok := idx.Join(p, to)
//	if ok && prev != to {
//	    idx.Remove(p, prev)
//	}
//
// Referencing a table outside 0..Tables()-1 panics with an error wrapping
// types.ErrUnknownTable.
package membership
