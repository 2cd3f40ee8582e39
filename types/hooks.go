package types

// Hooks defines callbacks for engine events.
//
// All hooks are optional. They are called synchronously on the engine's
// goroutine right after the event, so they observe a consistent membership.
// Hooks must not call back into the engine.
//
// Example:
//
//	hooks := &lunchr.Hooks{
//	    OnMove: func(o lunchr.Outcome) {
//	        fmt.Printf("%d -> %s\n", o.Person, o.Action)
//	    },
//	}
type Hooks struct {
	// OnMove is called after Step (and therefore Round and Settle) commits an
	// improving Join or Replace. Direct Commit calls carry no decision and do
	// not fire it.
	OnMove func(outcome Outcome)

	// OnEvict is called after person was evicted from table by a Replace,
	// whether committed by Step or by a direct Commit.
	OnEvict func(person PersonID, table TableID)

	// OnRoundComplete is called after each round with the round's outcomes.
	OnRoundComplete func(round int, outcomes []Outcome)
}
