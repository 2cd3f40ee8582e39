package lunchr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrterry/lunchr"
	lunchrtest "github.com/mrterry/lunchr/testing"
)

func TestSettle_Converges(t *testing.T) {
	eng := newEngine(t, 6, 3, 2)

	report, err := eng.Settle(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, lunchr.StopConverged, report.Reason)
	require.Equal(t, 2, report.Rounds)
	require.Equal(t, 6, report.Moves)
	require.Zero(t, report.Evictions)
	require.Equal(t, eng.Fingerprint(), report.Fingerprint)

	require.Empty(t, eng.Unassigned())
	require.Equal(t, []int{2, 2, 2}, eng.Occupancy())
	require.Equal(t, map[lunchr.PersonID]lunchr.TableID{
		0: 0, 1: 1, 2: 2, 3: 2, 4: 0, 5: 1,
	}, eng.Assignment())
	lunchrtest.AssertAssignmentConsistent(t, eng)

	// A settled seating is a fixed point.
	again, err := eng.Settle(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, lunchr.StopConverged, again.Reason)
	require.Equal(t, 1, again.Rounds)
	require.Zero(t, again.Moves)
	require.Equal(t, report.Fingerprint, again.Fingerprint)
}

func TestSettle_FewerPersonsThanSeats(t *testing.T) {
	eng := newEngine(t, 4, 3, 3)

	report, err := eng.Settle(context.Background(), []lunchr.PersonID{3, 2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, lunchr.StopConverged, report.Reason)
	require.Empty(t, eng.Unassigned())
	lunchrtest.AssertAssignmentConsistent(t, eng)
	lunchrtest.AssertCapacity(t, eng, 3)
}

func TestSettle_DetectsOscillation(t *testing.T) {
	eng := newEngine(t, 3, 1, 2)

	report, err := eng.Settle(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, lunchr.StopOscillation, report.Reason)
	require.LessOrEqual(t, report.Rounds, 4)
	require.Positive(t, report.Evictions)
	require.Len(t, eng.Unassigned(), 1)
	lunchrtest.AssertAssignmentConsistent(t, eng)
	lunchrtest.AssertCapacity(t, eng, 2)
}

func TestSettle_MaxRounds(t *testing.T) {
	cfg := lunchr.TestConfig()
	cfg.MaxRounds = 1

	eng, err := lunchr.New(&cfg)
	require.NoError(t, err)

	report, err := eng.Settle(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, lunchr.StopMaxRounds, report.Reason)
	require.Equal(t, 1, report.Rounds)
	require.Equal(t, 1, eng.Rounds())
}

func TestSettle_Canceled(t *testing.T) {
	eng := newEngine(t, 6, 3, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := eng.Settle(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, lunchr.StopCanceled, report.Reason)
	require.Zero(t, report.Rounds)
	require.Empty(t, eng.Assignment())
}

func TestSettle_CustomOrderTwice(t *testing.T) {
	// The command-line driver evaluates 0..n twice per round.
	eng := newEngine(t, 6, 3, 2)
	order := append(eng.Persons(), eng.Persons()...)

	report, err := eng.Settle(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, lunchr.StopConverged, report.Reason)
	require.Equal(t, []int{2, 2, 2}, eng.Occupancy())
}
