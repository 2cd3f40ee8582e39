// Package types provides core type definitions and interfaces for the lunchr library.
//
// This package contains shared types that are used across multiple packages in the
// lunchr library. Keeping them here lets the internal packages (membership, scan,
// decision) and the public scoring package depend on one vocabulary without
// importing the root package.
//
// Key types:
//   - PersonID, TableID: opaque identifiers for seated entities and their groups
//   - Cost: admission cost reported by a Scorer (lower is better)
//   - Action, Outcome: the result of one seating decision
//   - Members, Scorer: the read-only group view and the swappable fit policy
//   - Logger, MetricsCollector, Hooks: ambient collaborators
package types
