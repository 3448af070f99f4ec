package assemble

import "errors"

// ErrStuck is returned when no bot can find work and the target model
// isn't finished — a planner-level dead end distinct from engine.StuckError,
// which reports the same condition from the tick-stepping side.
var ErrStuck = errors.New("assemble: no bot can make progress toward the target model")
