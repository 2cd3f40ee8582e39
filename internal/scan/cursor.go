// Package scan provides the cyclic table cursor used by the decision procedure.
package scan

import (
	"fmt"

	"github.com/mrterry/lunchr/types"
)

// Cursor is an endless, restartable generator of table ids.
//
// It walks 0..n-1 in increasing order and wraps around. A single pending
// override can be queued with Redirect; the next Advance returns it without
// moving the natural position. There is no queue: a second Redirect before the
// first is consumed replaces it.
//
// Cursor is not safe for concurrent use.
type Cursor struct {
	n       int
	pos     int // index of the last natural value yielded
	next    types.TableID
	pending bool
}

// New creates a cursor over tableCount tables.
//
// The first natural value is table 0. New panics if tableCount is not positive,
// since an empty cycle can never yield.
func New(tableCount int) *Cursor {
	if tableCount <= 0 {
		panic(fmt.Errorf("scan: %w: cursor needs at least one table, got %d", types.ErrUnknownTable, tableCount))
	}

	return &Cursor{n: tableCount, pos: tableCount - 1}
}

// Len returns the number of tables in the cycle.
func (c *Cursor) Len() int {
	return c.n
}

// Advance returns the next table id.
//
// A pending redirect is returned (and cleared) in preference to the natural
// cyclic position, which is left untouched in that case.
func (c *Cursor) Advance() types.TableID {
	if c.pending {
		c.pending = false
		return c.next
	}
	c.pos = (c.pos + 1) % c.n

	return types.TableID(c.pos) //nolint:gosec // pos < n, n fits TableID
}

// Redirect queues table as the next value Advance returns.
//
// Redirecting to a table outside the cycle panics with types.ErrUnknownTable.
func (c *Cursor) Redirect(table types.TableID) {
	if int(table) >= c.n {
		panic(fmt.Errorf("scan: %w: %d (cycle of %d)", types.ErrUnknownTable, table, c.n))
	}
	c.next = table
	c.pending = true
}

// Pending returns the queued override, if any.
func (c *Cursor) Pending() (types.TableID, bool) {
	return c.next, c.pending
}

// Pass returns one full pass over the tables: every table exactly once.
//
// Values are drawn from Advance, so a pending redirect comes first. Duplicates
// produced by the redirect are skipped, which means a pass always consumes one
// complete natural cycle and leaves the natural position where it started.
func (c *Cursor) Pass() []types.TableID {
	out := make([]types.TableID, 0, c.n)
	seen := make([]bool, c.n)
	for len(out) < c.n {
		t := c.Advance()
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}

	return out
}
