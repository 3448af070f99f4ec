// Package verify is a standalone, always-available post-hoc checker for
// the fleet/grid invariants a trace must never violate.
//
// What: CheckInvariants inspects a live engine.State and reports every
// violation found, rather than stopping at the first one.
//
// Why: grounded on internal/algo/solver.go's FindFirstConflict/
// FindAllConflicts shape (sorted-robot-IDs, paired iteration over live
// agents), repurposed from continuous-time path-conflict detection to a
// discrete single-tick fleet-state check.
//
// Complexity: O(R^3 + n^2) for n live bots, dominated by the full grid
// scan for the FULL+BOT check; the LOW-harmonics-ungrounded check only
// reads the grid's ungrounded-set size.
//
// Errors: none — CheckInvariants never fails, it reports; callers decide
// whether a non-empty result is fatal.
package verify
