// Package lunchrtest provides test utilities for the lunchr library.
//
// It follows Go's convention of shipping testing helpers in a dedicated
// package (similar to net/http/httptest). The helpers work against any value
// that exposes a seating, so they accept a *lunchr.Engine as well as fakes.
//
// Key utilities:
//   - AssertAssignmentConsistent: forward map and table member lists agree
//   - AssertCapacity: no table holds more than its capacity
//   - NewTestLogger: types.Logger that writes through testing.TB
//
// Example usage:
//
//	import (
//	    "testing"
//	    lunchrtest "github.com/mrterry/lunchr/testing"
//	)
//
//	func TestMySeating(t *testing.T) {
//	    eng, _ := lunchr.New(&cfg, lunchr.WithLogger(lunchrtest.NewTestLogger(t)))
//	    _, _ = eng.Settle(context.Background(), nil)
//	    lunchrtest.AssertAssignmentConsistent(t, eng)
//	}
package lunchrtest
