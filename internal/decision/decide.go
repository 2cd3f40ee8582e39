// Package decision implements the best-improvement move selection for one person.
//
// Decide scores the person's current table (the base), then walks one pass of
// the scanner and keeps the cheapest feasible candidate of each kind:
//
//   - Direct join into a table with room: Join(t)
//   - Join via eviction into a full table: Replace(evicted, t), one candidate per occupant
//
// Replace candidates are only generated for full tables, and a Replace wins
// only when it is strictly cheaper than the best Join, so a free seat is taken
// over an equal-cost eviction. Within each kind candidates are compared with a
// strict less-than, so among equal costs the first one in scan order wins. The
// move is reported only if it strictly beats the base; otherwise the action is
// Stay.
//
// Decide never mutates membership. It does consume one pass of the scanner,
// which clears any pending redirect.
package decision

import (
	"github.com/mrterry/lunchr/internal/membership"
	"github.com/mrterry/lunchr/scoring"
	"github.com/mrterry/lunchr/types"
)

// Scanner produces one full pass over the table ids.
type Scanner interface {
	Pass() []types.TableID
}

// Result is the outcome of a single decision.
type Result struct {
	// Action is the chosen move, Stay when Improved is false.
	Action types.Action

	// Improved reports whether the best candidate strictly beat Base.
	Improved bool

	// Cost is the best candidate cost found (WorstCost when nothing was feasible).
	Cost types.Cost

	// Base is the cost of the current seat (WorstCost when unseated).
	Base types.Cost

	// Current is the table the person held when deciding (valid when Seated).
	Current types.TableID
	Seated  bool
}

// Decide picks the best available move for person.
//
// Parameters:
//   - person: Person being evaluated
//   - idx: Membership index (read only)
//   - scanner: Source of the table pass, typically a *scan.Cursor
//   - scorer: Fit policy
//
// Returns:
//   - Result: Chosen action and the costs that justified it
func Decide(person types.PersonID, idx *membership.Index, scanner Scanner, scorer types.Scorer) Result {
	res := Result{
		Action: types.Stay(),
		Cost:   types.WorstCost,
		Base:   types.WorstCost,
	}

	res.Current, res.Seated = idx.CurrentTable(person)
	if res.Seated {
		if base, ok := scorer.Score(person, idx.Members(res.Current)); ok {
			res.Base = base
		}
	}

	pass := scanner.Pass()

	bestJoin, join := types.WorstCost, types.Stay()
	full := make([]types.TableID, 0, len(pass))
	for _, table := range pass {
		// Joining one's own table is a no-op, and evicting a tablemate from it
		// is not a move.
		if res.Seated && table == res.Current {
			continue
		}

		cost, ok := scorer.Score(person, idx.Members(table))
		if !ok {
			full = append(full, table)
			continue
		}
		if cost < bestJoin {
			bestJoin, join = cost, types.Join(table)
		}
	}

	bestEvict, evict := types.WorstCost, types.Stay()
	for _, table := range full {
		for evicted, remaining := range scoring.DropOne(idx.Members(table)) {
			if cost, ok := scorer.Score(person, remaining); ok && cost < bestEvict {
				bestEvict, evict = cost, types.Replace(evicted, table)
			}
		}
	}

	switch {
	case bestEvict < bestJoin && bestEvict < res.Base:
		res.Action, res.Cost, res.Improved = evict, bestEvict, true
	case bestJoin < res.Base:
		res.Action, res.Cost, res.Improved = join, bestJoin, true
	default:
		res.Cost = min(bestJoin, bestEvict)
	}

	return res
}
