// Package voxel implements the authoritative R x R x R occupancy grid for
// the nanobot trace simulator: a dense flag plane plus the groundedness
// bookkeeping and cached aggregate queries the step engine and planners
// depend on.
//
// What:
//
//   - Grid stores four independent per-cell flags: Full, Grounded, Model, Bot.
//   - Groundedness is maintained incrementally: GroundAdjacent propagates from
//     a newly-grounded cell outward over Full-but-not-yet-Grounded neighbors.
//   - FullCount/ModelCount/GroundedCount and Bounds are cached and invalidated
//     on the relevant write path, recomputed by a single pass over the plane.
//
// Why:
//
//   - The simulator's step engine and both planners need O(1) point queries
//     against a grid as large as 250^3 cells, and need groundedness answered
//     without a fresh BFS on every fill.
//
// Complexity:
//
//   - Point get/set: O(1).
//   - GroundAdjacent: O(k) where k is the number of cells newly grounded.
//   - FullCount/ModelCount/GroundedCount/Bounds (cache miss): O(R^3).
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside [0,R)^3.
//   - ErrAlreadyFull: SetFull on an already-Full cell.
//   - ErrNotFull: SetVoid on a cell that is not Full.
package voxel
