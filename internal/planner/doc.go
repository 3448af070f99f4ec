// Package planner finds a path for a single bot through void space and
// compresses it into a minimal sequence of SMove/LMove operations.
//
// What: FindPath runs a 6-connected breadth-first search from a bot's
// position to a goal cell over cells the grid reports void; Compress
// turns the resulting cell-by-cell path into straight runs joined by
// LMove corners, respecting the SMove/LMove length limits.
//
// Why: BFS, not A*, because every edge costs 1 and the grid has no
// weighting to exploit — a priority queue only adds overhead here.
//
// Complexity: FindPath is O(R^3) worst case over an R x R x R grid.
// Compress is O(n) in path length.
//
// Errors: FindPath returns ErrNoPath if goal is unreachable.
package planner
