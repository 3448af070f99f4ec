// Package assemble is the high-level driver: it wires the fill planner,
// the path planner, and the step engine into the loop that turns a
// loaded target model into a complete assembly trace.
//
// What: Solve grows the fleet by fission to a working size, repeatedly
// asks the fill planner for each idle bot's next target and the path
// planner for a route there, enqueues the resulting ops, and steps the
// engine — then routes the fleet home, fuses it back to one bot, and
// halts.
//
// Why: grounded on algorithm_cube.py's solve(), including its
// fission-to-grow-the-fleet opening and its corridor-digging fallback
// (dig_mofo) for a fill target the path planner can't reach directly;
// adapted rather than translated, since the original's fallback is
// entangled with its own print-driven debugging.
//
// Complexity: O(steps * R^3) dominated by the planner/fill-cache scans
// already analyzed in internal/planner and internal/fillplan.
//
// Errors: ErrStuck if no bot can make progress and the model isn't
// finished; otherwise whatever internal/engine.State.Step returns.
package assemble
