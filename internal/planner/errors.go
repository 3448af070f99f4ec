package planner

import "errors"

// ErrNoPath is returned by FindPath when no void corridor connects the
// start and goal cells.
var ErrNoPath = errors.New("planner: no path to goal")
