package assemble

import (
	"sort"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/planner"
)

// returnPhase fuses the fleet down to bot 1, routes it to the origin,
// and halts. Each tick, the highest-id bot either fuses directly into
// bot 1 (if already near-adjacent) or routes toward it.
func (d *Driver) returnPhase() error {
	for len(d.State.Bots) > 1 {
		sort.Slice(d.State.Bots, func(i, j int) bool { return d.State.Bots[i].ID < d.State.Bots[j].ID })
		primary := d.State.Bots[0]
		secondary := d.State.Bots[len(d.State.Bots)-1]

		if !primary.HasWork() && !secondary.HasWork() {
			diff := secondary.Pos.Sub(primary.Pos)
			if nd, err := geom.NearDiff(diff.DX, diff.DY, diff.DZ); err == nil {
				primary.Enqueue(nbot.Op{Kind: nbot.FusionP, D1: nd})
				secondary.Enqueue(nbot.Op{Kind: nbot.FusionS, D1: nd.Neg()})
			} else if err := d.routeNextTo(secondary, primary.Pos); err != nil {
				return err
			}
		}

		if _, err := d.State.Step(); err != nil {
			return err
		}
	}

	primary := d.State.Bots[0]
	origin := geom.Coord{}
	if primary.Pos != origin {
		if err := d.routeTo(primary, origin); err != nil {
			return err
		}
		for primary.HasWork() {
			if _, err := d.State.Step(); err != nil {
				return err
			}
		}
	}

	primary.Enqueue(nbot.Op{Kind: nbot.Halt})
	_, err := d.State.Step()
	return err
}

// routeTo enqueues a compressed path from b's current position to dest.
func (d *Driver) routeTo(b *nbot.Bot, dest geom.Coord) error {
	if b.Pos == dest {
		return nil
	}
	path, err := planner.FindPath(d.State.Grid, b.Pos, dest)
	if err != nil {
		return err
	}
	for _, op := range planner.Compress(b.Pos, path) {
		b.Enqueue(op)
	}
	return nil
}

// routeNextTo enqueues a path to the first void cell 6-adjacent to
// target, or does nothing if b is already there.
func (d *Driver) routeNextTo(b *nbot.Bot, target geom.Coord) error {
	for _, a := range target.Adjacent6(d.State.Grid.R) {
		if a == b.Pos {
			return nil
		}
		if !d.State.Grid.IsVoid(a) {
			continue
		}
		if err := d.routeTo(b, a); err == nil {
			return nil
		}
	}
	return ErrStuck
}
