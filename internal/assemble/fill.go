package assemble

import (
	"github.com/elektrokombinacija/nanoforge/internal/fillplan"
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/planner"
)

// fillPhase assigns each idle bot its next fill target and steps the
// engine until the grid matches the target model exactly.
func (d *Driver) fillPhase() error {
	fillplan.BuildRegions(d.State.Bots, d.State.Grid.R)

	for !d.State.Grid.MatchesModel() {
		assigned := false
		for _, b := range d.State.Bots {
			if b.HasWork() {
				continue
			}
			if d.assignNextFill(b) {
				assigned = true
			}
		}

		progressed, err := d.State.Step()
		if err != nil {
			return err
		}
		if !progressed && !assigned {
			return ErrStuck
		}
	}

	if d.State.HarmonicsHigh {
		if err := d.flipToLow(); err != nil {
			return err
		}
	}
	return nil
}

// flipToLow queues a Flip on the lead bot and drains it, returning
// harmonics to LOW once every FULL cell has grounded. If some cell is
// still ungrounded the engine degrades the Flip to a Wait instead of
// failing the run; harmonics is left HIGH in that case.
func (d *Driver) flipToLow() error {
	b := d.State.Bots[0]
	b.Enqueue(nbot.Op{Kind: nbot.Flip})
	for b.HasWork() {
		if _, err := d.State.Step(); err != nil {
			return err
		}
	}
	return nil
}

// assignNextFill enqueues work for b toward its next fill target: a
// direct Fill if already adjacent and at or above the target's layer, a
// planned route to an adjacent void cell otherwise, a layer-sync nudge if
// the fill planner has nothing groundable for b yet, a flip to HIGH
// harmonics if nothing is groundable anywhere (the fleet is stalled on a
// genuinely ungrounded cell), or a corridor dig as a last resort.
func (d *Driver) assignNextFill(b *nbot.Bot) bool {
	target, ok := fillplan.NextFill(b, d.State.Grid)
	if !ok {
		if d.nudgeUpLayer(b) {
			return true
		}
		return d.fillUngroundedUnderHigh(b)
	}

	diff := target.Sub(b.Pos)
	if diff.MLen() == 1 && target.Y <= b.Pos.Y {
		if nd, err := geom.NearDiff(diff.DX, diff.DY, diff.DZ); err == nil {
			b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
			return true
		}
	}

	for _, a := range target.Adjacent6(d.State.Grid.R) {
		if !d.State.Grid.IsVoid(a) {
			continue
		}
		path, err := planner.FindPath(d.State.Grid, b.Pos, a)
		if err != nil {
			continue
		}
		for _, op := range planner.Compress(b.Pos, path) {
			b.Enqueue(op)
		}
		toTarget := target.Sub(a)
		if nd, err := geom.NearDiff(toTarget.DX, toTarget.DY, toTarget.DZ); err == nil {
			b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
		}
		return true
	}

	return d.digCorridor(b, target)
}

// nudgeUpLayer moves b up one layer when the fill planner reports nothing
// reachable in its current region — the lower layers feeding it are
// likely still in progress elsewhere in the fleet.
func (d *Driver) nudgeUpLayer(b *nbot.Bot) bool {
	higher, ok := fillplan.SynchronizeLayer(d.State.Bots, b.Pos.Y)
	if !ok || higher <= b.Pos.Y {
		return false
	}
	up := geom.Diff{DY: 1}
	if !d.State.Grid.IsVoid(b.Pos.Add(up)) {
		return false
	}
	b.Enqueue(nbot.Op{Kind: nbot.SMove, D1: up})
	return true
}

// fillUngroundedUnderHigh is the last resort when nothing in b's region
// would be grounded if filled: flip harmonics to HIGH (if not already)
// and fill the next candidate regardless of groundedness. fillPhase
// flips harmonics back to LOW once the whole model is complete and
// grounding has propagated through it.
func (d *Driver) fillUngroundedUnderHigh(b *nbot.Bot) bool {
	target, ok := fillplan.NextFillAny(b, d.State.Grid)
	if !ok {
		return false
	}

	if !d.State.HarmonicsHigh {
		b.Enqueue(nbot.Op{Kind: nbot.Flip})
	}

	diff := target.Sub(b.Pos)
	if diff.MLen() == 1 {
		if nd, err := geom.NearDiff(diff.DX, diff.DY, diff.DZ); err == nil {
			b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
			return true
		}
	}

	for _, a := range target.Adjacent6(d.State.Grid.R) {
		if !d.State.Grid.IsVoid(a) {
			continue
		}
		path, err := planner.FindPath(d.State.Grid, b.Pos, a)
		if err != nil {
			continue
		}
		for _, op := range planner.Compress(b.Pos, path) {
			b.Enqueue(op)
		}
		toTarget := target.Sub(a)
		if nd, err := geom.NearDiff(toTarget.DX, toTarget.DY, toTarget.DZ); err == nil {
			b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
		}
		return true
	}
	return false
}
