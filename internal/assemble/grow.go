package assemble

import (
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// growFleet fissions bots one at a time, each splitting roughly half its
// remaining seeds off to a freshly spawned neighbor, until the fleet
// reaches target or no bot can find a free adjacent cell to spawn into.
func (d *Driver) growFleet(target int) error {
	for len(d.State.Bots) < target {
		grew := false
		for _, b := range d.State.Bots {
			if len(d.State.Bots) >= target {
				break
			}
			if b.HasWork() || len(b.Seeds) == 0 {
				continue
			}
			nd, ok := freeNeighbor(d.State.Grid, b.Pos)
			if !ok {
				continue
			}
			m := (len(b.Seeds) - 1) / 2
			b.Enqueue(nbot.Op{Kind: nbot.Fission, D1: nd, M: m})
			grew = true
		}
		if !grew {
			if len(d.State.Bots) == 1 {
				return ErrStuck
			}
			break
		}
		if _, err := d.State.Step(); err != nil {
			return err
		}
	}
	return nil
}

// freeNeighbor returns the near displacement to the first void
// 6-connected neighbor of pos, if any.
func freeNeighbor(g *voxel.Grid, pos geom.Coord) (geom.Diff, bool) {
	for _, n := range pos.Adjacent6(g.R) {
		if g.IsVoid(n) {
			return n.Sub(pos), true
		}
	}
	return geom.Diff{}, false
}
