package lunchr

import (
	"fmt"
	"slices"
	"time"

	"github.com/mrterry/lunchr/internal/decision"
	"github.com/mrterry/lunchr/internal/hooks"
	"github.com/mrterry/lunchr/internal/logger"
	"github.com/mrterry/lunchr/internal/membership"
	"github.com/mrterry/lunchr/internal/metrics"
	"github.com/mrterry/lunchr/internal/scan"
	"github.com/mrterry/lunchr/scoring"
)

// Engine seats persons at tables and improves the seating by local search.
//
// It owns the membership index, the table scan cursor and the scorer. Every
// decision reads the index, scans one full pass of tables and, if a strictly
// better seat exists, commits the move and redirects the cursor to the mutated
// table so the next decision examines it first.
//
// Engine is not safe for concurrent use. Two decisions can target the same
// table and interact through its capacity, so callers that share an Engine
// must serialize every call.
type Engine struct {
	cfg Config

	index  *membership.Index
	cursor *scan.Cursor
	scorer Scorer

	logger  Logger
	metrics MetricsCollector
	hooks   Hooks

	rounds int
}

// New creates an engine with every table empty and nobody seated.
//
// Parameters:
//   - cfg: Configuration (defaults are applied to missing fields)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithScorer)
//
// Returns:
//   - *Engine: Ready-to-use engine
//   - error: ErrInvalidConfig (wrapped) if the configuration is invalid
//
// Example:
//
//	cfg := lunchr.Config{PersonCount: 6, TableCount: 3, TableCapacity: 2}
//	eng, err := lunchr.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := eng.Settle(ctx, nil)
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	c := *cfg
	SetDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	scorer := options.scorer
	if scorer == nil {
		// Validate already resolved the name once.
		scorer, _ = scoring.New(c.Scorer, c.TableCapacity)
	}

	c.ValidateWithWarnings(loggerInstance)

	e := &Engine{
		cfg:     c,
		index:   membership.New(c.PersonCount, c.TableCount),
		cursor:  scan.New(c.TableCount),
		scorer:  scorer,
		logger:  loggerInstance,
		metrics: metricsCollector,
		hooks:   hooks.Fill(options.hooks),
	}

	e.logger.Info("engine created",
		"persons", c.PersonCount,
		"tables", c.TableCount,
		"capacity", c.TableCapacity,
		"scorer", c.Scorer,
	)

	return e, nil
}

// Config returns the effective configuration (defaults applied).
func (e *Engine) Config() Config {
	return e.cfg
}

// Persons returns every person id in ascending order, the natural round order.
func (e *Engine) Persons() []PersonID {
	out := make([]PersonID, e.cfg.PersonCount)
	for i := range out {
		out[i] = PersonID(i) //nolint:gosec // bounded by PersonCount
	}

	return out
}

// Decide evaluates the best move for person without committing it.
//
// Decide consumes one pass of the engine's scan cursor (and with it any
// pending redirect) but never mutates the seating.
//
// Returns:
//   - Decision: Chosen action and costs; Action is Stay unless Improved
//   - error: ErrUnknownPerson (wrapped) for ids outside the configured range
func (e *Engine) Decide(person PersonID) (Decision, error) {
	if err := e.checkPerson(person); err != nil {
		return Decision{}, err
	}

	return decision.Decide(person, e.index, e.cursor, e.scorer), nil
}

// Commit applies action for person.
//
// Join moves the person (removing them from their previous table). Replace
// first evicts action.Evicted, who is left unassigned, then seats the person.
// After any move the scan cursor is redirected to the mutated table. Stay is a
// no-op. Commit fires OnEvict for a Replace; OnMove and the decision metrics
// belong to Step, which knows the costs involved.
//
// Commit refuses actions that would overfill a table or evict a non-member.
// Referencing a table outside 0..TableCount-1 panics with ErrUnknownTable.
//
// Returns:
//   - error: ErrUnknownPerson, ErrInvalidAction or ErrInvariantViolation (wrapped)
func (e *Engine) Commit(person PersonID, action Action) error {
	if err := e.checkPerson(person); err != nil {
		return err
	}

	switch action.Kind {
	case ActionStay:
		return nil

	case ActionJoin:
		members := e.index.Members(action.Table)
		if !members.Contains(person) && members.Len() >= e.cfg.TableCapacity {
			return fmt.Errorf("%w: %s for person %d: table is full", ErrInvalidAction, action, person)
		}
		e.seat(person, action.Table)

	case ActionReplace:
		if err := e.checkPerson(action.Evicted); err != nil {
			return err
		}
		if action.Evicted == person {
			return fmt.Errorf("%w: %s: person cannot evict themselves", ErrInvalidAction, action)
		}
		if !e.index.Members(action.Table).Contains(action.Evicted) {
			return fmt.Errorf("%w: %s: person %d is not seated there", ErrInvalidAction, action, action.Evicted)
		}
		e.index.Remove(action.Evicted, action.Table)
		e.metrics.RecordEviction(action.Table)
		e.seat(person, action.Table)
		e.hooks.OnEvict(action.Evicted, action.Table)

	default:
		return fmt.Errorf("%w: unknown action kind %d", ErrInvalidAction, action.Kind)
	}

	e.cursor.Redirect(action.Table)
	e.metrics.RecordMove(action.Table)

	if !e.cfg.SkipInvariantChecks {
		if err := e.index.CheckInvariants(e.cfg.TableCapacity); err != nil {
			e.logger.Error("membership invariant violated", "person", person, "action", action.String(), "error", err)
			return err
		}
	}

	return nil
}

// seat joins person to table and clears their stale entry in the previous table.
func (e *Engine) seat(person PersonID, table TableID) {
	prev, ok := e.index.Join(person, table)
	if ok && prev != table {
		e.index.Remove(person, prev)
		e.metrics.SetOccupancy(prev, e.index.Members(prev).Len())
	}
	e.metrics.SetOccupancy(table, e.index.Members(table).Len())
}

// Step decides for person and commits the result.
//
// Returns:
//   - Outcome: What was decided and committed
//   - error: Propagated from Decide or Commit
func (e *Engine) Step(person PersonID) (Outcome, error) {
	start := time.Now()

	res, err := e.Decide(person)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Person:   person,
		From:     res.Current,
		HadTable: res.Seated,
		Action:   res.Action,
		Improved: res.Improved,
		Cost:     res.Base,
	}
	if res.Improved {
		outcome.Cost = res.Cost
		if err := e.Commit(person, res.Action); err != nil {
			return outcome, err
		}
	}

	e.metrics.RecordDecision(res.Action.Kind.String(), res.Improved, time.Since(start).Seconds())

	if res.Improved {
		e.logger.Debug("seat committed",
			"person", person,
			"action", res.Action.String(),
			"cost", int64(res.Cost),
			"base", int64(res.Base),
		)
		e.hooks.OnMove(outcome)
	}

	return outcome, nil
}

// Round evaluates persons in order, committing every improving move.
//
// A person evicted during the round is appended to the round's queue and
// decided again before the round ends, at most once per round. This bounds
// a round to len(persons)+PersonCount decisions.
//
// Returns:
//   - []Outcome: One outcome per decision, in evaluation order
//   - error: First error from Step, with the outcomes gathered so far
func (e *Engine) Round(persons []PersonID) ([]Outcome, error) {
	start := time.Now()
	round := e.rounds + 1

	queue := slices.Clone(persons)
	requeued := make(map[PersonID]struct{})
	outcomes := make([]Outcome, 0, len(queue))
	moves := 0

	for i := 0; i < len(queue); i++ {
		outcome, err := e.Step(queue[i])
		if err != nil {
			return outcomes, fmt.Errorf("round %d: person %d: %w", round, queue[i], err)
		}
		outcomes = append(outcomes, outcome)

		if !outcome.Improved {
			continue
		}
		moves++

		if outcome.Action.Kind == ActionReplace {
			evicted := outcome.Action.Evicted
			if _, done := requeued[evicted]; !done {
				requeued[evicted] = struct{}{}
				queue = append(queue, evicted)
			}
		}
	}

	e.rounds = round
	e.metrics.RecordRound(len(outcomes), moves, time.Since(start).Seconds())
	e.logger.Debug("round complete", "round", round, "evaluated", len(outcomes), "moves", moves)
	e.hooks.OnRoundComplete(round, outcomes)

	return outcomes, nil
}

// Rounds returns the number of rounds completed so far.
func (e *Engine) Rounds() int {
	return e.rounds
}

// CurrentTable returns the table holding person, if any.
func (e *Engine) CurrentTable(person PersonID) (TableID, bool) {
	return e.index.CurrentTable(person)
}

// Members returns the persons seated at table in ascending order.
// It panics with ErrUnknownTable for tables outside 0..TableCount-1.
func (e *Engine) Members(table TableID) []PersonID {
	return e.index.Members(table).Slice()
}

// Assignment returns a copy of the person → table map. Unassigned persons are absent.
func (e *Engine) Assignment() map[PersonID]TableID {
	return e.index.Assignment()
}

// Unassigned returns the persons without a seat, in ascending order.
func (e *Engine) Unassigned() []PersonID {
	var out []PersonID
	for _, p := range e.Persons() {
		if _, ok := e.index.CurrentTable(p); !ok {
			out = append(out, p)
		}
	}

	return out
}

// Occupancy returns the member count of each table, indexed by table id.
func (e *Engine) Occupancy() []int {
	return e.index.Occupancy()
}

// Fingerprint returns a hash of the current seating.
// Equal seatings have equal fingerprints.
func (e *Engine) Fingerprint() uint64 {
	return e.index.Fingerprint()
}

// CheckInvariants verifies single assignment, the exact reverse index and capacity.
func (e *Engine) CheckInvariants() error {
	return e.index.CheckInvariants(e.cfg.TableCapacity)
}

func (e *Engine) checkPerson(person PersonID) error {
	if int(person) >= e.cfg.PersonCount {
		return fmt.Errorf("%w: %d (persons: %d)", ErrUnknownPerson, person, e.cfg.PersonCount)
	}

	return nil
}
