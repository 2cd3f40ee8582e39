package scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrterry/lunchr/types"
)

func advanceN(c *Cursor, n int) []types.TableID {
	out := make([]types.TableID, n)
	for i := range out {
		out[i] = c.Advance()
	}

	return out
}

func TestCursor_Advance(t *testing.T) {
	t.Run("cycles in increasing order and wraps", func(t *testing.T) {
		c := New(3)
		require.Equal(t, []types.TableID{0, 1, 2, 0, 1, 2, 0}, advanceN(c, 7))
	})

	t.Run("single table always yields zero", func(t *testing.T) {
		c := New(1)
		require.Equal(t, []types.TableID{0, 0, 0}, advanceN(c, 3))
	})
}

func TestCursor_Redirect(t *testing.T) {
	t.Run("override is returned next without moving the cycle", func(t *testing.T) {
		c := New(3)
		require.Equal(t, types.TableID(0), c.Advance())

		c.Redirect(2)
		pending, ok := c.Pending()
		require.True(t, ok)
		require.Equal(t, types.TableID(2), pending)

		require.Equal(t, []types.TableID{2, 1, 2, 0}, advanceN(c, 4))
		_, ok = c.Pending()
		require.False(t, ok)
	})

	t.Run("second redirect replaces the first", func(t *testing.T) {
		c := New(4)
		c.Redirect(1)
		c.Redirect(3)

		require.Equal(t, []types.TableID{3, 0, 1}, advanceN(c, 3))
	})

	t.Run("redirect outside the cycle panics", func(t *testing.T) {
		c := New(2)
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.True(t, errors.Is(err, types.ErrUnknownTable))
		}()
		c.Redirect(2)
	})
}

func TestCursor_Pass(t *testing.T) {
	t.Run("visits every table once in natural order", func(t *testing.T) {
		c := New(3)
		require.Equal(t, []types.TableID{0, 1, 2}, c.Pass())
		require.Equal(t, []types.TableID{0, 1, 2}, c.Pass())
	})

	t.Run("redirected table comes first and is not repeated", func(t *testing.T) {
		c := New(3)
		c.Redirect(1)

		require.Equal(t, []types.TableID{1, 0, 2}, c.Pass())
		require.Equal(t, []types.TableID{0, 1, 2}, c.Pass(), "natural position is unchanged")
	})

	t.Run("continues from a mid-cycle position", func(t *testing.T) {
		c := New(3)
		c.Advance()

		require.Equal(t, []types.TableID{1, 2, 0}, c.Pass())
	})
}

func TestNew_PanicsOnEmptyCycle(t *testing.T) {
	require.Panics(t, func() { New(0) })
}
