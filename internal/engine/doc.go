// Package engine is the nanobot fleet state machine: it owns the voxel
// grid, the bot fleet, and the per-tick execution of queued operations.
//
// What: State.Step pops one operation from each bot that has one, in
// ascending bot-id order, executes it against the shared grid, reconciles
// any Fission/Fusion choreography, and advances the tick counter.
//
// Why: execution needs simultaneous read/write access to the grid and the
// whole fleet, which is exactly the state a Bot value deliberately does
// not hold a reference to — so the mutation logic lives here rather than
// as methods on nbot.Bot.
//
// Complexity: O(bots) per tick plus whatever the executed operations cost
// (GFill/GVoid touch every cell in their region).
//
// Errors: a precondition violation (landing on an occupied cell, filling
// an already-void-adjacent unsupported cell, etc.) degrades that bot to
// Wait and clears its queue rather than failing the tick. Only structurally
// invalid conditions — an unmatched fusion, a halt with bots still present
// — are returned as errors from Step.
package engine
