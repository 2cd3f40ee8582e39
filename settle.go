package lunchr

import (
	"context"
	"fmt"
)

// StopReason explains why Settle returned.
type StopReason string

const (
	// StopConverged means a full round produced no improving move: a fixed point.
	StopConverged StopReason = "converged"

	// StopMaxRounds means Config.MaxRounds rounds ran without converging.
	StopMaxRounds StopReason = "max_rounds"

	// StopOscillation means a round ended in a seating already seen earlier in
	// the run, so further rounds would cycle.
	StopOscillation StopReason = "oscillation"

	// StopCanceled means the context ended between rounds.
	StopCanceled StopReason = "canceled"
)

// SettleReport summarizes a Settle run.
type SettleReport struct {
	// Rounds is the number of rounds executed by this run.
	Rounds int

	// Moves counts committed Join and Replace actions.
	Moves int

	// Evictions counts committed Replace actions.
	Evictions int

	// Reason is why the run stopped.
	Reason StopReason

	// Fingerprint identifies the final seating.
	Fingerprint uint64
}

// Settle runs rounds until the seating stops improving.
//
// Each round evaluates order (every person ascending when order is nil). The
// run stops at the first round without an improving move, after
// Config.MaxRounds rounds, when a seating repeats, or when ctx ends. The
// context is checked between rounds only; a round always runs to completion.
//
// Parameters:
//   - ctx: Context for cancellation between rounds
//   - order: Evaluation order per round (nil selects Persons())
//
// Returns:
//   - SettleReport: What the run did and why it stopped
//   - error: Wrapped context error on cancellation, or a Round error
func (e *Engine) Settle(ctx context.Context, order []PersonID) (SettleReport, error) {
	if order == nil {
		order = e.Persons()
	}

	report := SettleReport{Reason: StopMaxRounds}
	seen := map[uint64]struct{}{e.index.Fingerprint(): {}}

	finish := func() SettleReport {
		report.Fingerprint = e.index.Fingerprint()
		e.metrics.RecordSettle(string(report.Reason), report.Rounds)
		e.logger.Info("settle finished",
			"reason", string(report.Reason),
			"rounds", report.Rounds,
			"moves", report.Moves,
			"evictions", report.Evictions,
			"unassigned", len(e.Unassigned()),
		)

		return report
	}

	for report.Rounds < e.cfg.MaxRounds {
		if err := ctx.Err(); err != nil {
			report.Reason = StopCanceled
			return finish(), fmt.Errorf("settle canceled after %d rounds: %w", report.Rounds, err)
		}

		outcomes, err := e.Round(order)
		report.Rounds++
		if err != nil {
			return finish(), err
		}

		improved := 0
		for _, o := range outcomes {
			if !o.Improved {
				continue
			}
			improved++
			if o.Action.Kind == ActionReplace {
				report.Evictions++
			}
		}
		report.Moves += improved

		if improved == 0 {
			report.Reason = StopConverged
			break
		}

		fp := e.index.Fingerprint()
		if _, ok := seen[fp]; ok {
			report.Reason = StopOscillation
			break
		}
		seen[fp] = struct{}{}
	}

	return finish(), nil
}
