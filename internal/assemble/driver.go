package assemble

import (
	"github.com/elektrokombinacija/nanoforge/internal/engine"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// Driver holds the simulation State being built up into a full trace.
type Driver struct {
	State *engine.State
	Cfg   engine.Config
}

// New creates a Driver over grid with a single seed bot, ready for Solve.
func New(grid *voxel.Grid) *Driver {
	return &Driver{State: engine.New(grid), Cfg: engine.DefaultConfig(grid.R)}
}

// Solve runs fleet expansion, fill-and-route, and the final return/fuse/
// halt phase, returning the complete trace and run metrics.
func (d *Driver) Solve() (tracefmt.Trace, engine.Metrics, error) {
	target := targetFleetSize(d.State.Grid, d.Cfg.MaxFleet)
	if err := d.growFleet(target); err != nil {
		return nil, d.State.Metrics(), err
	}
	if err := d.fillPhase(); err != nil {
		return nil, d.State.Metrics(), err
	}
	if err := d.returnPhase(); err != nil {
		return nil, d.State.Metrics(), err
	}
	return d.State.Trace, d.State.Metrics(), nil
}

// targetFleetSize picks a working fleet size proportional to the model's
// footprint, bounded by the contest's 40-bot cap and the available seed
// pool (39, since bot 1 holds the origin seed).
func targetFleetSize(g *voxel.Grid, maxFleet int) int {
	n := 1 + g.ModelCount()/64
	if n > maxFleet {
		n = maxFleet
	}
	if n > 40 {
		n = 40
	}
	if n < 1 {
		n = 1
	}
	return n
}
