// Package invert turns an assembly trace into the trace that disassembles
// what it built, so the same fleet can be reused for demolition or
// reconfiguration instead of building a separate planner for each.
//
// What: Invert runs two passes over the trace. The first replays the
// fleet's Fission/Fusion choreography at the position level only (no
// grid needed) to learn which tick split which bot off which, and builds
// a renaming so the reversed trace's bot identities line up. The second
// pass walks the trace again substituting each command's inverse (Fill
// <-> Void, SMove(d) -> SMove(-d), a future Fission <-> a past Fusion,
// ...), reorders each tick by the new identities, and reverses the whole
// sequence.
//
// Why: grounded directly on unprinter.py — the fission/fusion bookkeeping
// is inherently stateful and two-pass (the renaming a merge needs can
// only be assigned once every later merge has been seen), so it does not
// reduce to a per-command map.
//
// Complexity: O(n) in trace length for both passes.
//
// Errors: ErrGroupSizeMismatch if a tick's command count doesn't match
// the live fleet size implied by prior ticks — a malformed trace.
package invert
