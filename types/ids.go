package types

import "math"

// PersonID identifies a person being seated.
//
// Identifiers carry no attributes beyond identity. A person exists for the
// whole run and is only ever reassigned, never removed.
type PersonID uint32

// TableID identifies a table (a capacity-bounded group).
//
// Tables are allocated once as the dense range 0..TableCount-1.
type TableID uint32

// Cost is the admission cost reported by a Scorer. Smaller is better.
type Cost int64

// WorstCost is the cost of being unassigned. Any feasible admission beats it.
const WorstCost = Cost(math.MaxInt64)
