package assemble

import (
	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/nbot"
	"github.com/elektrokombinacija/nanoforge/internal/planner"
)

// approach is one of the four straight-line corridors dig_mofo tries,
// one per grid face on the target's (x,z) layer.
type approach struct {
	face geom.Coord
	dir  geom.Diff
	n    int
}

// digCorridor is the fallback when no void cell adjacent to target has a
// BFS path from b: dig a straight corridor in from the first grid face,
// tried in a fixed order, that b can reach, void any model cell blocking
// the way, fill target, then refill whatever was voided on the way back out.
func (d *Driver) digCorridor(b *nbot.Bot, target geom.Coord) bool {
	r := d.State.Grid.R
	approaches := []approach{
		{geom.Coord{X: r - 1, Y: target.Y, Z: target.Z}, geom.Diff{DX: -1}, r - target.X - 2},
		{geom.Coord{X: target.X, Y: target.Y, Z: 0}, geom.Diff{DZ: 1}, target.Z - 1},
		{geom.Coord{X: target.X, Y: target.Y, Z: r - 1}, geom.Diff{DZ: -1}, r - target.Z - 2},
		{geom.Coord{X: 0, Y: target.Y, Z: target.Z}, geom.Diff{DX: 1}, target.X - 1},
	}

	for _, ap := range approaches {
		if ap.n < 0 || !ap.face.InBounds(r) {
			continue
		}
		path, err := planner.FindPath(d.State.Grid, b.Pos, ap.face)
		if err != nil {
			continue
		}
		for _, op := range planner.Compress(b.Pos, path) {
			b.Enqueue(op)
		}
		d.digStraight(b, ap, target)
		return true
	}
	return false
}

// digStraight enqueues the void-then-advance corridor, the terminal fill,
// and the refill-on-the-way-out retreat for one approach.
func (d *Driver) digStraight(b *nbot.Bot, ap approach, target geom.Coord) {
	cur := ap.face
	voided := make(map[geom.Coord]bool)
	for i := 0; i < ap.n; i++ {
		next := cur.Add(ap.dir)
		if d.State.Grid.IsFull(next) {
			if nd, err := geom.NearDiff(ap.dir.DX, ap.dir.DY, ap.dir.DZ); err == nil {
				b.Enqueue(nbot.Op{Kind: nbot.Void, D1: nd})
				voided[next] = true
			}
		}
		b.Enqueue(nbot.Op{Kind: nbot.SMove, D1: ap.dir})
		cur = next
	}

	if toTarget := target.Sub(cur); toTarget.MLen() <= 2 {
		if nd, err := geom.NearDiff(toTarget.DX, toTarget.DY, toTarget.DZ); err == nil {
			b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
		}
	}

	back := ap.dir.Neg()
	cur2 := cur
	for i := 0; i < ap.n; i++ {
		b.Enqueue(nbot.Op{Kind: nbot.SMove, D1: back})
		cur2 = cur2.Add(back)
		if voided[cur2.Add(ap.dir)] {
			if nd, err := geom.NearDiff(ap.dir.DX, ap.dir.DY, ap.dir.DZ); err == nil {
				b.Enqueue(nbot.Op{Kind: nbot.Fill, D1: nd})
			}
		}
	}
}
