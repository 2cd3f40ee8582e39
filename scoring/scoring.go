package scoring

import (
	"fmt"
	"strings"

	"github.com/mrterry/lunchr/types"
)

// Scorer names accepted by New.
const (
	NameSize    = "size"
	NamePacking = "packing"
)

// New resolves a scorer by name for tables of the given capacity.
//
// Parameters:
//   - name: "size" or "packing" (case-insensitive, "" selects "size")
//   - capacity: Shared table capacity
//
// Returns:
//   - types.Scorer: Resolved scorer
//   - error: types.ErrUnknownScorer (wrapped) for any other name
func New(name string, capacity int) (types.Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSize:
		return NewSize(capacity), nil
	case NamePacking:
		return NewPacking(capacity), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownScorer, name)
	}
}
