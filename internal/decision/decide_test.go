package decision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrterry/lunchr/internal/membership"
	"github.com/mrterry/lunchr/internal/scan"
	"github.com/mrterry/lunchr/scoring"
	"github.com/mrterry/lunchr/types"
)

// fixedPass replays the same table order on every pass.
type fixedPass []types.TableID

func (f fixedPass) Pass() []types.TableID {
	return f
}

func apply(idx *membership.Index, person types.PersonID, action types.Action) {
	switch action.Kind {
	case types.ActionJoin:
		if prev, ok := idx.Join(person, action.Table); ok && prev != action.Table {
			idx.Remove(person, prev)
		}
	case types.ActionReplace:
		idx.Remove(action.Evicted, action.Table)
		if prev, ok := idx.Join(person, action.Table); ok && prev != action.Table {
			idx.Remove(person, prev)
		}
	case types.ActionStay:
	}
}

func TestDecide_SingleTable(t *testing.T) {
	idx := membership.New(3, 1)
	cursor := scan.New(1)
	scorer := scoring.NewSize(2)

	res := Decide(1, idx, cursor, scorer)
	require.True(t, res.Improved)
	require.Equal(t, types.Join(0), res.Action)
	require.Equal(t, types.Cost(1), res.Cost)
	require.Equal(t, types.WorstCost, res.Base)
	require.False(t, res.Seated)
	apply(idx, 1, res.Action)

	res = Decide(2, idx, cursor, scorer)
	require.True(t, res.Improved)
	require.Equal(t, types.Join(0), res.Action, "direct join wins while the table has room")
	apply(idx, 2, res.Action)

	res = Decide(3, idx, cursor, scorer)
	require.True(t, res.Improved, "eviction beats staying unassigned")
	require.Equal(t, types.Replace(1, 0), res.Action, "first occupant in ascending order is evicted on ties")
	require.Equal(t, types.Cost(2), res.Cost)
	apply(idx, 3, res.Action)

	_, seated := idx.CurrentTable(1)
	require.False(t, seated)
	require.Equal(t, []types.PersonID{2, 3}, idx.Members(0).Slice())
	require.NoError(t, idx.CheckInvariants(2))
}

func TestDecide_DirectJoinBeatsEviction(t *testing.T) {
	// capacity 1, person 1 at table 0, person 2 unassigned. Replace(1, 0) and
	// Join(1) both cost 1, but eviction is only a fallback.
	idx := membership.New(2, 2)
	idx.Join(1, 0)

	res := Decide(2, idx, scan.New(2), scoring.NewSize(1))

	require.True(t, res.Improved)
	require.Equal(t, types.Join(1), res.Action)
	require.Equal(t, types.Cost(1), res.Cost)
}

func TestDecide_EvictionFallback(t *testing.T) {
	t.Run("all tables full picks the first eviction in scan order", func(t *testing.T) {
		idx := membership.New(5, 2)
		idx.Join(0, 0)
		idx.Join(1, 0)
		idx.Join(2, 1)
		idx.Join(3, 1)

		res := Decide(4, idx, fixedPass{1, 0}, scoring.NewSize(2))

		require.True(t, res.Improved)
		require.Equal(t, types.Replace(2, 1), res.Action)
	})

	t.Run("cheaper eviction wins over an earlier one", func(t *testing.T) {
		// Every group costs its size unless it contains person 3.
		idx := membership.New(5, 2)
		idx.Join(0, 0)
		idx.Join(1, 0)
		idx.Join(2, 1)
		idx.Join(3, 1)

		res := Decide(4, idx, scan.New(2), preferScorer{capacity: 2, liked: 3})

		require.True(t, res.Improved)
		require.Equal(t, types.Replace(2, 1), res.Action)
		require.Equal(t, types.Cost(0), res.Cost)
	})

	t.Run("non-improving join does not block an improving eviction", func(t *testing.T) {
		// Packing with capacity 2: person 0 alone at table 0 costs 1, the
		// empty table 2 also costs 1, evicting into full table 1 costs 0.
		idx := membership.New(4, 3)
		idx.Join(0, 0)
		idx.Join(1, 1)
		idx.Join(2, 1)

		res := Decide(0, idx, scan.New(3), scoring.NewPacking(2))

		require.True(t, res.Improved)
		require.Equal(t, types.Replace(1, 1), res.Action)
		require.Equal(t, types.Cost(1), res.Base)
		require.Equal(t, types.Cost(0), res.Cost)
	})
}

func TestDecide_CheaperEvictionBeatsImprovingJoin(t *testing.T) {
	// Packing, capacity 3: joining empty table 0 costs 2, taking a seat at
	// full table 1 leaves it full and costs 0.
	idx := membership.New(5, 2)
	idx.Join(1, 1)
	idx.Join(2, 1)
	idx.Join(3, 1)

	res := Decide(4, idx, scan.New(2), scoring.NewPacking(3))

	require.True(t, res.Improved)
	require.Equal(t, types.Replace(1, 1), res.Action)
	require.Equal(t, types.Cost(0), res.Cost)
}

func TestDecide_TieBreakFollowsScanOrder(t *testing.T) {
	t.Run("equal direct joins pick the earlier table", func(t *testing.T) {
		idx := membership.New(1, 3)

		res := Decide(0, idx, fixedPass{2, 0, 1}, scoring.NewSize(2))

		require.Equal(t, types.Join(2), res.Action)
	})

	t.Run("redirect changes the winner", func(t *testing.T) {
		idx := membership.New(1, 3)
		cursor := scan.New(3)
		cursor.Redirect(1)

		res := Decide(0, idx, cursor, scoring.NewSize(2))

		require.Equal(t, types.Join(1), res.Action)
	})
}

func TestDecide_Stay(t *testing.T) {
	t.Run("alone at a table cannot improve", func(t *testing.T) {
		idx := membership.New(2, 2)
		idx.Join(0, 0)
		before := idx.Fingerprint()

		res := Decide(0, idx, scan.New(2), scoring.NewSize(2))

		require.False(t, res.Improved)
		require.Equal(t, types.Stay(), res.Action)
		require.Equal(t, types.Cost(1), res.Base)
		require.Equal(t, types.Cost(1), res.Cost, "empty table 1 ties the base")
		require.Equal(t, before, idx.Fingerprint(), "decide is read only")
	})

	t.Run("own table is never a candidate", func(t *testing.T) {
		idx := membership.New(2, 1)
		idx.Join(0, 0)
		idx.Join(1, 0)

		res := Decide(0, idx, scan.New(1), scoring.NewSize(2))

		require.False(t, res.Improved)
		require.Equal(t, types.WorstCost, res.Cost)
		require.True(t, res.Seated)
		require.Equal(t, types.TableID(0), res.Current)
	})

	t.Run("nothing feasible leaves the person unassigned", func(t *testing.T) {
		idx := membership.New(1, 2)

		res := Decide(0, idx, scan.New(2), scoring.NewSize(0))

		require.False(t, res.Improved)
		require.Equal(t, types.Stay(), res.Action)
		require.Equal(t, types.WorstCost, res.Cost)
	})
}

func TestDecide_MovesToSmallerTable(t *testing.T) {
	idx := membership.New(3, 2)
	idx.Join(0, 0)
	idx.Join(1, 0)

	res := Decide(1, idx, scan.New(2), scoring.NewSize(2))

	require.True(t, res.Improved)
	require.Equal(t, types.Join(1), res.Action)
	require.Equal(t, types.Cost(2), res.Base)
	require.Equal(t, types.Cost(1), res.Cost)
}

func TestDecide_PackingPrefersFullerTables(t *testing.T) {
	idx := membership.New(4, 2)
	idx.Join(0, 0)
	idx.Join(1, 1)
	idx.Join(2, 1)

	res := Decide(0, idx, scan.New(2), scoring.NewPacking(3))

	require.True(t, res.Improved)
	require.Equal(t, types.Join(1), res.Action)
	require.Equal(t, types.Cost(2), res.Base)
	require.Equal(t, types.Cost(0), res.Cost)
}

// preferScorer admits up to capacity persons and makes a group containing
// liked free; every other group costs its size.
type preferScorer struct {
	capacity int
	liked    types.PersonID
}

func (p preferScorer) Score(person types.PersonID, members types.Members) (types.Cost, bool) {
	size := members.Len()
	if !members.Contains(person) {
		size++
	}
	if size > p.capacity {
		return 0, false
	}
	if members.Contains(p.liked) {
		return 0, true
	}

	return types.Cost(size), true
}

func TestDecide_ConsumesRedirect(t *testing.T) {
	cursor := scan.New(3)
	cursor.Redirect(2)

	Decide(0, membership.New(1, 3), cursor, scoring.NewSize(1))

	_, pending := cursor.Pending()
	require.False(t, pending)
}

func TestDecide_SeatedPersonNeverEvictsUnderSize(t *testing.T) {
	idx := membership.New(6, 3)
	for p := range types.PersonID(6) {
		idx.Join(p, types.TableID(p/2))
	}

	for p := range types.PersonID(6) {
		res := Decide(p, idx, scan.New(3), scoring.NewSize(2))
		require.False(t, res.Improved, "person %d", p)
		require.Equal(t, types.Stay(), res.Action)
	}
}
