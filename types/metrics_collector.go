package types

// MetricsCollector defines methods for recording engine metrics.
//
// Implementations should be cheap: the engine calls them on every decision.
// The engine is single-threaded, but collectors may be shared between engines
// and should therefore be safe for concurrent use.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	DecisionMetrics
	RoundMetrics
}

// DecisionMetrics defines metrics for individual seating decisions.
type DecisionMetrics interface {
	// RecordDecision records one evaluated decision.
	//
	// Parameters:
	//   - kind: Action kind chosen ("Stay", "Join", "Replace")
	//   - improved: Whether the action strictly improved the person's cost
	//   - duration: Time spent deciding, in seconds
	RecordDecision(kind string, improved bool, duration float64)

	// RecordMove records a committed move into table.
	RecordMove(table TableID)

	// RecordEviction records an occupant evicted from table.
	RecordEviction(table TableID)

	// SetOccupancy sets the current member count of table (gauge metric).
	SetOccupancy(table TableID, count int)
}

// RoundMetrics defines metrics for rounds and settle runs.
type RoundMetrics interface {
	// RecordRound records a completed round.
	//
	// Parameters:
	//   - evaluated: Number of decisions made in the round (including re-queued evictees)
	//   - moves: Number of committed moves
	//   - duration: Round duration in seconds
	RecordRound(evaluated, moves int, duration float64)

	// RecordSettle records the end of a settle run.
	//
	// Parameters:
	//   - reason: Why settling stopped ("converged", "max_rounds", "oscillation", "canceled")
	//   - rounds: Rounds executed
	RecordSettle(reason string, rounds int)
}
