package membership

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrterry/lunchr/types"
)

func TestView(t *testing.T) {
	t.Run("NewView sorts and deduplicates", func(t *testing.T) {
		v := NewView(3, 1, 3, 2)

		require.Equal(t, 3, v.Len())
		require.Equal(t, []types.PersonID{1, 2, 3}, v.Slice())
	})

	t.Run("Without hides one occupant", func(t *testing.T) {
		v := NewView(1, 2, 3)
		w := v.Without(2)

		require.Equal(t, 2, w.Len())
		require.False(t, w.Contains(2))
		require.True(t, w.Contains(1))
		require.Equal(t, []types.PersonID{1, 3}, w.Slice())
		require.Equal(t, 3, v.Len(), "original view is unchanged")
	})

	t.Run("Without a non-member is a no-op", func(t *testing.T) {
		v := NewView(1, 2)
		require.Equal(t, v.Slice(), v.Without(7).Slice())
	})

	t.Run("Without twice materializes", func(t *testing.T) {
		w := NewView(1, 2, 3).Without(1).Without(3)

		require.Equal(t, 1, w.Len())
		require.Equal(t, []types.PersonID{2}, w.Slice())
	})

	t.Run("All stops early", func(t *testing.T) {
		var seen []types.PersonID
		for p := range NewView(4, 5, 6).All() {
			seen = append(seen, p)
			if len(seen) == 2 {
				break
			}
		}

		require.True(t, slices.Equal([]types.PersonID{4, 5}, seen))
	})
}
