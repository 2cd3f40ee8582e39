// Package lunchr seats people at capacity-bounded tables and improves the
// seating by best-improvement local search.
//
// Persons are identified 0..PersonCount-1 and tables 0..TableCount-1. Every
// table holds at most TableCapacity persons. An Engine takes persons in turn
// and offers each one every table once (a pass). A person moves when some
// table, possibly after evicting one of its occupants, scores strictly lower
// than the table they sit at now. Evicted persons are left unassigned and are
// re-decided later in the same round.
//
// # Quick Start
//
//	cfg := lunchr.Config{PersonCount: 6, TableCount: 3, TableCapacity: 2}
//	eng, err := lunchr.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := eng.Settle(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Reason, eng.Assignment())
//
// # Scoring
//
// A Scorer decides what "better" means. The built-in scorers live in the
// scoring package:
//
//   - size (default): smaller tables are better, which spreads persons out
//   - packing: fuller tables are better, which packs persons tightly
//
// Custom policies implement Scorer and are passed with WithScorer. A scorer
// must report over-capacity groups as infeasible.
//
// # Decisions
//
// Decide is read-only and Commit applies an action, so callers can inspect a
// decision before acting on it. Step does both, Round steps a list of
// persons, and Settle repeats rounds until no move improves, MaxRounds is
// reached, or a seating repeats. Local search with eviction is not guaranteed
// to converge, especially when there are more persons than seats.
//
// After every committed move the engine redirects its table scan to the
// mutated table, so the next decision looks there first. Equal-cost
// candidates are resolved in scan order.
//
// # Observability
//
// Logging, metrics and event hooks are optional:
//
//	eng, err := lunchr.New(&cfg,
//	    lunchr.WithLogger(logger),
//	    lunchr.WithMetrics(collector),
//	    lunchr.WithHooks(&lunchr.Hooks{
//	        OnEvict: func(p lunchr.PersonID, t lunchr.TableID) { ... },
//	    }),
//	)
//
// An Engine is not safe for concurrent use.
package lunchr
