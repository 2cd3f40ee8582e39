// Package hooks provides the default no-op engine hooks.
package hooks

import "github.com/mrterry/lunchr/types"

// NopHooks implements every hook callback as a no-op.
//
// Filling unset callbacks with these removes nil checks from the engine.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(types.Outcome)                 = (*NopHooks)(nil).OnMove
	_ func(types.PersonID, types.TableID) = (*NopHooks)(nil).OnEvict
	_ func(int, []types.Outcome)          = (*NopHooks)(nil).OnRoundComplete
)

// NewNop creates hooks whose callbacks do nothing.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnMove:          h.OnMove,
		OnEvict:         h.OnEvict,
		OnRoundComplete: h.OnRoundComplete,
	}
}

// Fill returns a copy of h with every nil callback replaced by a no-op.
// A nil h yields NewNop().
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnMove != nil {
		out.OnMove = h.OnMove
	}
	if h.OnEvict != nil {
		out.OnEvict = h.OnEvict
	}
	if h.OnRoundComplete != nil {
		out.OnRoundComplete = h.OnRoundComplete
	}

	return out
}

// OnMove is a no-op implementation.
func (h *NopHooks) OnMove(_ types.Outcome) {}

// OnEvict is a no-op implementation.
func (h *NopHooks) OnEvict(_ types.PersonID, _ types.TableID) {}

// OnRoundComplete is a no-op implementation.
func (h *NopHooks) OnRoundComplete(_ int, _ []types.Outcome) {}
