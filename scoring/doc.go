// Package scoring provides built-in fit scorers and the eviction enumerator.
//
// A scorer answers one question: what would it cost to admit a person to a
// group? Lower is better, and a false feasibility flag means the admission is
// rejected outright. The package includes two built-in policies:
//
//   - Size: cost is the resulting group size, so small/exclusive tables win (default)
//   - Packing: cost is the free seats left, so fuller tables win (bin-packing bias)
//
// Both share the same feasibility rule: the resulting group may not exceed the
// table capacity. Sizes are computed analytically from the current view, never
// by copying the member set.
//
// DropOne enumerates the hypothetical groups obtained by evicting exactly one
// occupant, which is how the decision procedure evaluates Replace moves.
//
// Custom policies can be implemented by satisfying the types.Scorer interface.
package scoring
